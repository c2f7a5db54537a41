// Package admin — принудительное удаление точек по паролю администратора.
// service.go содержит проверку пароля (Argon2id) и защиту от перебора.
// Сессий нет: API без состояния, пароль передаётся с каждым запросом.
package admin

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/argon2"

	"reliefmap/internal/common"
)

// maxAttempts — неудачных попыток на один ключ (IP) за окно attemptWindow.
const (
	maxAttempts   = 3
	attemptWindow = 1 * time.Hour
)

// Service проверяет пароль администратора.
type Service struct {
	passwordHash string
	attemptsMu   sync.Mutex
	attempts     map[string][]time.Time // неудачные попытки по ключу вызывающего
}

// NewService создаёт сервис админки.
// passwordHash — в формате $argon2id$v=19$m=...,t=...,p=...$salt$hash
// (генерируется scripts/generate_hash.go).
func NewService(passwordHash string) *Service {
	return &Service{
		passwordHash: passwordHash,
		attempts:     make(map[string][]time.Time),
	}
}

// Verify проверяет пароль. clientKey — идентификатор вызывающего (IP)
// для подсчёта неудачных попыток: 3 мимо за час — блокировка.
func (s *Service) Verify(clientKey, password string) error {
	if s.tooManyAttempts(clientKey) {
		return common.ErrTooManyAttempts
	}

	if !verifyArgon2id(password, s.passwordHash) {
		s.logFailure(clientKey)
		return common.ErrWrongPassword
	}

	// Успешный вход обнуляет счётчик неудач: старые промахи
	// не должны блокировать владельца пароля весь час
	s.clearFailures(clientKey)
	return nil
}

func (s *Service) tooManyAttempts(clientKey string) bool {
	s.attemptsMu.Lock()
	defer s.attemptsMu.Unlock()

	cutoff := time.Now().Add(-attemptWindow)
	var recent []time.Time
	for _, t := range s.attempts[clientKey] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	s.attempts[clientKey] = recent
	return len(recent) >= maxAttempts
}

func (s *Service) clearFailures(clientKey string) {
	s.attemptsMu.Lock()
	defer s.attemptsMu.Unlock()
	delete(s.attempts, clientKey)
}

func (s *Service) logFailure(clientKey string) {
	s.attemptsMu.Lock()
	defer s.attemptsMu.Unlock()
	s.attempts[clientKey] = append(s.attempts[clientKey], time.Now())
	log.WithField("client", clientKey).Warn("Неудачная попытка админ-аутентификации")
}

// --- Криптографические утилиты ---

// verifyArgon2id проверяет пароль по хешу Argon2id.
// Формат хеша: $argon2id$v=19$m=65536,t=3,p=2$<salt_base64>$<hash_base64>
func verifyArgon2id(password, encodedHash string) bool {
	// Парсим хеш
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		log.Error("Некорректный формат хеша Argon2id")
		return false
	}

	// Извлекаем параметры
	var memory uint32
	var iterations uint32
	var parallelism uint8
	_, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism)
	if err != nil {
		log.WithError(err).Error("Ошибка парсинга параметров Argon2id")
		return false
	}

	// Декодируем соль
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		log.WithError(err).Error("Ошибка декодирования соли")
		return false
	}

	// Декодируем хеш
	expectedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		log.WithError(err).Error("Ошибка декодирования хеша")
		return false
	}

	// Вычисляем хеш введённого пароля
	computedHash := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(expectedHash)))

	// Сравниваем в постоянном времени (защита от timing attack)
	return subtle.ConstantTimeCompare(computedHash, expectedHash) == 1
}
