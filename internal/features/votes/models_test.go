package votes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reliefmap/internal/common"
)

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("up")
	require.NoError(t, err)
	assert.Equal(t, DirectionUp, d)

	d, err = ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, DirectionDown, d)

	_, err = ParseDirection("sideways")
	assert.ErrorIs(t, err, common.ErrInvalidDirection)

	_, err = ParseDirection("")
	assert.ErrorIs(t, err, common.ErrInvalidDirection)
}

func TestDirectionHelpers(t *testing.T) {
	assert.Equal(t, "upvotes", DirectionUp.CounterField())
	assert.Equal(t, "downvotes", DirectionDown.CounterField())
	assert.Equal(t, DirectionDown, DirectionUp.Opposite())
	assert.Equal(t, DirectionUp, DirectionDown.Opposite())
}

// Первый голос: записи нет — вставляем и инкрементируем запрошенный счётчик.
func TestDecideRecorded(t *testing.T) {
	out := decide(nil, DirectionUp)
	assert.Equal(t, ResultRecorded, out.Result)
	assert.Equal(t, DirectionUp, out.Inc)
	assert.Empty(t, out.Dec)

	out = decide(nil, DirectionDown)
	assert.Equal(t, ResultRecorded, out.Result)
	assert.Equal(t, DirectionDown, out.Inc)
	assert.Empty(t, out.Dec)
}

// Повтор того же направления снимает голос: счётчики возвращаются
// к состоянию до первого голоса (закон переключения).
func TestDecideRetracted(t *testing.T) {
	up := DirectionUp
	out := decide(&up, DirectionUp)
	assert.Equal(t, ResultRetracted, out.Result)
	assert.Empty(t, out.Inc)
	assert.Equal(t, DirectionUp, out.Dec)
}

// Противоположное направление меняет голос: минус старому счётчику,
// плюс новому — в сумме ровно один учтённый голос последнего направления.
func TestDecideChanged(t *testing.T) {
	up := DirectionUp
	out := decide(&up, DirectionDown)
	assert.Equal(t, ResultChanged, out.Result)
	assert.Equal(t, DirectionDown, out.Inc)
	assert.Equal(t, DirectionUp, out.Dec)

	down := DirectionDown
	out = decide(&down, DirectionUp)
	assert.Equal(t, ResultChanged, out.Result)
	assert.Equal(t, DirectionUp, out.Inc)
	assert.Equal(t, DirectionDown, out.Dec)
}

// Счётчики точки после любой последовательности голосов должны совпадать
// с пересчётом по леджеру. Прогоняем последовательности через decide,
// применяя Inc/Dec к счётчикам и исход к леджеру, и сверяем.
func TestCountersMatchLedgerAfterSequences(t *testing.T) {
	type vote struct {
		user string
		dir  Direction
	}
	sequences := [][]vote{
		// Один пользователь переключает голос туда-обратно
		{{"u1", DirectionUp}, {"u1", DirectionUp}, {"u1", DirectionDown}, {"u1", DirectionDown}},
		// Смена направления без снятия
		{{"u1", DirectionUp}, {"u1", DirectionDown}, {"u1", DirectionUp}},
		// Несколько пользователей вперемешку
		{
			{"u1", DirectionUp}, {"u2", DirectionDown}, {"u3", DirectionDown},
			{"u2", DirectionDown}, {"u1", DirectionDown}, {"u3", DirectionUp},
		},
	}

	for _, seq := range sequences {
		ledger := make(map[string]Direction)
		var up, down int

		for _, v := range seq {
			var existing *Direction
			if d, ok := ledger[v.user]; ok {
				existing = &d
			}
			out := decide(existing, v.dir)

			switch out.Dec {
			case DirectionUp:
				up--
			case DirectionDown:
				down--
			}
			switch out.Inc {
			case DirectionUp:
				up++
			case DirectionDown:
				down++
			}

			switch out.Result {
			case ResultRecorded, ResultChanged:
				ledger[v.user] = v.dir
			case ResultRetracted:
				delete(ledger, v.user)
			}
		}

		var wantUp, wantDown int
		for _, d := range ledger {
			if d == DirectionUp {
				wantUp++
			} else {
				wantDown++
			}
		}
		assert.Equal(t, wantUp, up, "up-счётчик разошёлся с леджером: %v", seq)
		assert.Equal(t, wantDown, down, "down-счётчик разошёлся с леджером: %v", seq)
		assert.GreaterOrEqual(t, up, 0)
		assert.GreaterOrEqual(t, down, 0)
	}
}

// Последовательность «up, up» нейтральна, «up, down» оставляет один down.
func TestDecideSequences(t *testing.T) {
	// up затем up: вставка +up, потом снятие -up → нетто ноль
	first := decide(nil, DirectionUp)
	up := DirectionUp
	second := decide(&up, DirectionUp)
	assert.Equal(t, first.Inc, second.Dec)

	// up затем down: нетто -up +down
	second = decide(&up, DirectionDown)
	assert.Equal(t, DirectionUp, second.Dec)
	assert.Equal(t, DirectionDown, second.Inc)
}
