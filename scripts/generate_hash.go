//go:build ignore

// Генератор значения ADMIN_PASSWORD_HASH для .env:
//
//	go run scripts/generate_hash.go <пароль>
//
// Параметры Argon2id совпадают с проверкой в internal/features/admin.
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/crypto/argon2"
)

const (
	saltLength  = 16
	memory      = 64 * 1024
	iterations  = 3
	parallelism = 2
	keyLength   = 32
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "использование: go run scripts/generate_hash.go <пароль>")
		os.Exit(2)
	}

	encoded, err := encodePassword(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ошибка генерации хеша: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", encoded)
}

func encodePassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, keyLength)

	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory, iterations, parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}
