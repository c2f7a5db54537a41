package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Пороги по умолчанию: FLAGGED при down-up >= 5, SUPPRESSED при down >= 10,
// DELETE при down >= 20.
func defaultPolicy() *Policy {
	return NewPolicy(5, 10, 20)
}

func TestClassifyNormal(t *testing.T) {
	p := defaultPolicy()

	assert.Equal(t, StatusNormal, p.Classify(0, 0))
	// Чуть ниже порога пометки
	assert.Equal(t, StatusNormal, p.Classify(0, 4))
	assert.Equal(t, StatusNormal, p.Classify(1, 5))
	// Плюсы перевешивают любые минусы ниже suppress-порога
	assert.Equal(t, StatusNormal, p.Classify(100, 9))
}

func TestClassifyFlagged(t *testing.T) {
	p := defaultPolicy()

	// Ровно на границе: down - up == 5
	assert.Equal(t, StatusFlagged, p.Classify(0, 5))
	assert.Equal(t, StatusFlagged, p.Classify(3, 8))
	assert.Equal(t, StatusFlagged, p.Classify(0, 9))
}

func TestClassifySuppressed(t *testing.T) {
	p := defaultPolicy()

	assert.Equal(t, StatusSuppressed, p.Classify(0, 10))
	// Даже при перевесе плюсов 10 минусов затемняют точку
	assert.Equal(t, StatusSuppressed, p.Classify(100, 10))
	assert.Equal(t, StatusSuppressed, p.Classify(0, 19))
}

func TestClassifyDelete(t *testing.T) {
	p := defaultPolicy()

	assert.Equal(t, StatusDelete, p.Classify(0, 20))
	assert.Equal(t, StatusDelete, p.Classify(50, 25))
}

func TestClassifySeverityOrder(t *testing.T) {
	p := defaultPolicy()

	// Точка с 20 минусами подпадает под все три условия,
	// но возвращается самый строгий класс
	assert.Equal(t, StatusDelete, p.Classify(0, 20))
	// 10 минусов — и flagged, и suppressed: возвращается suppressed
	assert.Equal(t, StatusSuppressed, p.Classify(0, 10))
}

func TestDeleteThreshold(t *testing.T) {
	assert.Equal(t, 20, defaultPolicy().DeleteThreshold())
}
