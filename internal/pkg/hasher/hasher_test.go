package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashers(t *testing.T) {
	hashers := map[string]PasswordHasher{
		"bcrypt": NewBcryptHasher(bcrypt.MinCost),
		"argon2": NewArgon2Hasher(),
	}

	for name, h := range hashers {
		t.Run(name, func(t *testing.T) {
			hash, err := h.Hash("pw123")
			require.NoError(t, err)
			assert.NotEqual(t, "pw123", hash)

			ok, err := h.Verify(hash, "pw123")
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = h.Verify(hash, "wrong")
			require.NoError(t, err)
			assert.False(t, ok)

			again, err := h.Hash("pw123")
			require.NoError(t, err)
			assert.NotEqual(t, hash, again, "hashes must be salted")
		})
	}
}

func TestArgon2Hasher_RejectsMalformedHash(t *testing.T) {
	h := NewArgon2Hasher()

	for _, hash := range []string{
		"",
		"plain",
		"$argon2id$v=19$m=1,t=1,p=1$!!$!!",
		"$bcrypt$v=1$a$b$c",
		"$argon2id$v=19$m=65536,t=3,p=0$c2FsdHNhbHRzYWx0c2FsdA$a2V5",
		"$argon2id$v=19$m=65536,t=0,p=2$c2FsdHNhbHRzYWx0c2FsdA$a2V5",
	} {
		ok, err := h.Verify(hash, "pw123")
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrInvalidHash, hash)
	}
}

func TestNew(t *testing.T) {
	assert.IsType(t, &Argon2Hasher{}, New(AlgorithmArgon2))
	assert.IsType(t, &BcryptHasher{}, New(AlgorithmBcrypt))
	assert.IsType(t, &BcryptHasher{}, New("unknown"))
}
