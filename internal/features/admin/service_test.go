package admin

import (
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"

	"reliefmap/internal/common"
)

// makeHash собирает Argon2id-хеш в том же формате, что scripts/generate_hash.go.
func makeHash(t *testing.T, password string) string {
	t.Helper()

	salt := []byte("0123456789abcdef")
	var (
		memory      uint32 = 65536
		iterations  uint32 = 3
		parallelism uint8  = 2
	)
	hash := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, 32)

	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory, iterations, parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
}

func TestVerifyCorrectPassword(t *testing.T) {
	s := NewService(makeHash(t, "secret-pass"))
	require.NoError(t, s.Verify("10.0.0.1", "secret-pass"))
}

func TestVerifyWrongPassword(t *testing.T) {
	s := NewService(makeHash(t, "secret-pass"))
	assert.ErrorIs(t, s.Verify("10.0.0.1", "wrong"), common.ErrWrongPassword)
}

func TestVerifyThrottlesAfterFailures(t *testing.T) {
	s := NewService(makeHash(t, "secret-pass"))

	for i := 0; i < maxAttempts; i++ {
		assert.ErrorIs(t, s.Verify("10.0.0.1", "wrong"), common.ErrWrongPassword)
	}
	// Лимит исчерпан — даже правильный пароль блокируется
	assert.ErrorIs(t, s.Verify("10.0.0.1", "secret-pass"), common.ErrTooManyAttempts)

	// Другой клиент не задет
	require.NoError(t, s.Verify("10.0.0.2", "secret-pass"))
}

// Успешный вход сбрасывает накопленные неудачи: промахи до и после
// него не складываются в блокировку.
func TestVerifySuccessResetsFailures(t *testing.T) {
	s := NewService(makeHash(t, "secret-pass"))

	for i := 0; i < maxAttempts-1; i++ {
		assert.ErrorIs(t, s.Verify("10.0.0.1", "wrong"), common.ErrWrongPassword)
	}
	require.NoError(t, s.Verify("10.0.0.1", "secret-pass"))

	for i := 0; i < maxAttempts-1; i++ {
		assert.ErrorIs(t, s.Verify("10.0.0.1", "wrong"), common.ErrWrongPassword)
	}
	// Без сброса здесь было бы ErrTooManyAttempts
	require.NoError(t, s.Verify("10.0.0.1", "secret-pass"))
}

func TestVerifyMalformedHash(t *testing.T) {
	s := NewService("не-хеш")
	assert.ErrorIs(t, s.Verify("10.0.0.1", "любой"), common.ErrWrongPassword)
}
