// Package moderation — чистая политика доверия к точкам раздачи.
// policy.go отображает сырые счётчики голосов в класс видимости.
// Класс НИКОГДА не сохраняется в БД — он пересчитывается из счётчиков
// при каждом чтении, поэтому рассинхронизация невозможна.
package moderation

// Status — класс видимости/доверия точки.
type Status string

const (
	// StatusNormal — обычная точка, ничего не помечено
	StatusNormal Status = "normal"
	// StatusFlagged — перевес минусов, точка видна с пометкой недоверия,
	// голосовать по-прежнему можно
	StatusFlagged Status = "flagged"
	// StatusSuppressed — точка затемняется в выдаче, но остаётся и может
	// реабилитироваться будущими плюсами
	StatusSuppressed Status = "suppressed"
	// StatusDelete — терминальное состояние: точка удаляется при следующем чтении
	StatusDelete Status = "delete"
)

// Policy хранит пороги классификации. Пороги приходят из конфигурации,
// а не зашиты в код компонентов.
type Policy struct {
	flagNetDownvotes  int // FLAGGED: downvotes - upvotes >= порога
	suppressDownvotes int // SUPPRESSED: downvotes >= порога
	deleteDownvotes   int // DELETE: downvotes >= порога
}

// NewPolicy создаёт политику с заданными порогами.
func NewPolicy(flagNetDownvotes, suppressDownvotes, deleteDownvotes int) *Policy {
	return &Policy{
		flagNetDownvotes:  flagNetDownvotes,
		suppressDownvotes: suppressDownvotes,
		deleteDownvotes:   deleteDownvotes,
	}
}

// Classify возвращает класс точки по её счётчикам.
// Проверки идут от самого строгого класса к самому мягкому:
// точка с 20 минусами — DELETE, а не FLAGGED.
func (p *Policy) Classify(upvotes, downvotes int) Status {
	if downvotes >= p.deleteDownvotes {
		return StatusDelete
	}
	if downvotes >= p.suppressDownvotes {
		return StatusSuppressed
	}
	if downvotes-upvotes >= p.flagNetDownvotes {
		return StatusFlagged
	}
	return StatusNormal
}

// DeleteThreshold возвращает порог удаления.
// Нужен репозиторию точек для SQL-запроса ленивой очистки.
func (p *Policy) DeleteThreshold() int {
	return p.deleteDownvotes
}
