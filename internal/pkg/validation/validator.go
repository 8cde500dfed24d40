// Package validation checks request structs against their `validate` tags and
// reports failures as localized apperror validation errors.
package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"chatlog-be/internal/pkg/apperror"
	"chatlog-be/internal/pkg/i18n"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	id_translations "github.com/go-playground/validator/v10/translations/id"
)

var notBlankMessages = map[string]string{
	i18n.LocaleEnglish:    "{0} must not be blank",
	i18n.LocaleIndonesian: "{0} tidak boleh kosong",
}

var maxBytesMessages = map[string]string{
	i18n.LocaleEnglish:    "{0} must be at most {1} bytes",
	i18n.LocaleIndonesian: "{0} maksimal {1} byte",
}

// maxBytes bounds the UTF-8 encoded length of a string field. The builtin
// max tag counts runes, which is not what bcrypt limits.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

type Validator struct {
	validate   *validator.Validate
	translator *i18n.Translator
}

func New(translator *i18n.Translator) (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names so details line up with the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return nil, err
	}
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		return nil, err
	}

	for _, locale := range translator.Locales() {
		trans := translator.Get(locale)

		var err error
		switch locale {
		case i18n.LocaleIndonesian:
			err = id_translations.RegisterDefaultTranslations(v, trans)
		default:
			err = en_translations.RegisterDefaultTranslations(v, trans)
		}
		if err != nil {
			return nil, fmt.Errorf("validation: register %s translations: %w", locale, err)
		}

		text := notBlankMessages[locale]
		err = v.RegisterTranslation("notblank", trans,
			func(tr ut.Translator) error {
				return tr.Add("notblank", text, true)
			},
			func(tr ut.Translator, fe validator.FieldError) string {
				t, _ := tr.T("notblank", fe.Field())
				return t
			},
		)
		if err != nil {
			return nil, fmt.Errorf("validation: register %s notblank: %w", locale, err)
		}

		limitText := maxBytesMessages[locale]
		err = v.RegisterTranslation("maxbytes", trans,
			func(tr ut.Translator) error {
				return tr.Add("maxbytes", limitText, true)
			},
			func(tr ut.Translator, fe validator.FieldError) string {
				t, _ := tr.T("maxbytes", fe.Field(), fe.Param())
				return t
			},
		)
		if err != nil {
			return nil, fmt.Errorf("validation: register %s maxbytes: %w", locale, err)
		}
	}

	return &Validator{validate: v, translator: translator}, nil
}

// Struct validates s and returns an apperror validation error whose fields
// are translated into the locale carried by ctx.
func (v *Validator) Struct(ctx context.Context, op string, s interface{}) error {
	err := v.validate.StructCtx(ctx, s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.Wrap(apperror.KindValidation, op, err)
	}

	trans := v.translator.Get(i18n.LocaleFromContext(ctx))
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := fields[fe.Field()]; !seen {
			fields[fe.Field()] = fe.Translate(trans)
		}
	}
	return apperror.Validation(op, fields)
}
