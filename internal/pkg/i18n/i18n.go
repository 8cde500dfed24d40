// Package i18n holds the locale -> error kind -> user-facing message table.
package i18n

import (
	"context"
	"fmt"

	"chatlog-be/internal/pkg/apperror"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/id"
	ut "github.com/go-playground/universal-translator"
)

const (
	LocaleEnglish    = "en"
	LocaleIndonesian = "id"
)

var messages = map[string]map[apperror.Kind]string{
	LocaleEnglish: {
		apperror.KindValidation:         "Some fields are missing or invalid",
		apperror.KindMalformedRequest:   "Request body must be valid JSON",
		apperror.KindDuplicateEmail:     "Email is already registered",
		apperror.KindDuplicateUsername:  "Username is already taken",
		apperror.KindInvalidCredentials: "Invalid email or password",
		apperror.KindNotFound:           "Resource not found",
		apperror.KindUnauthenticated:    "Please log in to continue",
		apperror.KindStoreFailure:       "Something went wrong, please try again later",
	},
	LocaleIndonesian: {
		apperror.KindValidation:         "Beberapa kolom kosong atau tidak valid",
		apperror.KindMalformedRequest:   "Body permintaan harus berupa JSON yang valid",
		apperror.KindDuplicateEmail:     "Email sudah terdaftar",
		apperror.KindDuplicateUsername:  "Nama pengguna sudah digunakan",
		apperror.KindInvalidCredentials: "Email atau kata sandi salah",
		apperror.KindNotFound:           "Data tidak ditemukan",
		apperror.KindUnauthenticated:    "Silakan masuk terlebih dahulu",
		apperror.KindStoreFailure:       "Terjadi kesalahan, silakan coba lagi nanti",
	},
}

type Translator struct {
	uni           *ut.UniversalTranslator
	defaultLocale string
	locales       []string
}

func NewTranslator(defaultLocale string) (*Translator, error) {
	uni := ut.New(en.New(), en.New(), id.New())

	locales := []string{LocaleEnglish, LocaleIndonesian}
	for _, locale := range locales {
		trans, _ := uni.GetTranslator(locale)
		for kind, text := range messages[locale] {
			if err := trans.Add(string(kind), text, true); err != nil {
				return nil, fmt.Errorf("i18n: add %s/%s: %w", locale, kind, err)
			}
		}
	}

	if _, ok := messages[defaultLocale]; !ok {
		defaultLocale = LocaleEnglish
	}

	return &Translator{
		uni:           uni,
		defaultLocale: defaultLocale,
		locales:       locales,
	}, nil
}

// Locales returns the supported locales, default first.
func (t *Translator) Locales() []string {
	out := []string{t.defaultLocale}
	for _, l := range t.locales {
		if l != t.defaultLocale {
			out = append(out, l)
		}
	}
	return out
}

func (t *Translator) DefaultLocale() string {
	return t.defaultLocale
}

// Get returns the translator for locale, or the default one if unsupported.
func (t *Translator) Get(locale string) ut.Translator {
	if trans, found := t.uni.GetTranslator(locale); found {
		return trans
	}
	trans, _ := t.uni.GetTranslator(t.defaultLocale)
	return trans
}

// Message returns the localized message for kind.
func (t *Translator) Message(locale string, kind apperror.Kind) string {
	if text, err := t.Get(locale).T(string(kind)); err == nil {
		return text
	}
	if text, err := t.Get(t.defaultLocale).T(string(kind)); err == nil {
		return text
	}
	return string(kind)
}

type localeKey struct{}

// WithLocale stores the request locale so services can localize validation details.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// LocaleFromContext returns the locale set by WithLocale, or "".
func LocaleFromContext(ctx context.Context) string {
	locale, _ := ctx.Value(localeKey{}).(string)
	return locale
}
