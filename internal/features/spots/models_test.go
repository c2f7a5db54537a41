package spots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"reliefmap/internal/common"
)

func validDraft() *Draft {
	lat, lng := 23.8103, 90.4125
	return &Draft{
		Name: "Раздача у мечети",
		Lat:  &lat,
		Lng:  &lng,
	}
}

func TestDraftValidateOK(t *testing.T) {
	assert.NoError(t, validDraft().Validate())

	d := validDraft()
	d.Date = "2026-08-30"
	d.ExpiryDate = "2026-09-05"
	assert.NoError(t, d.Validate())
}

func TestDraftValidateEmptyName(t *testing.T) {
	d := validDraft()
	d.Name = ""
	assert.ErrorIs(t, d.Validate(), common.ErrEmptyName)

	// Одни пробелы — тоже пустое название
	d.Name = "   "
	assert.ErrorIs(t, d.Validate(), common.ErrEmptyName)
}

func TestDraftValidateMissingCoordinates(t *testing.T) {
	d := validDraft()
	d.Lat = nil
	assert.ErrorIs(t, d.Validate(), common.ErrMissingCoordinates)

	d = validDraft()
	d.Lng = nil
	assert.ErrorIs(t, d.Validate(), common.ErrMissingCoordinates)
}

func TestDraftValidateBadDates(t *testing.T) {
	d := validDraft()
	d.Date = "30.08.2026"
	assert.ErrorIs(t, d.Validate(), common.ErrInvalidDate)

	d = validDraft()
	d.ExpiryDate = "не дата"
	assert.ErrorIs(t, d.Validate(), common.ErrInvalidDate)
}

func day(s string) time.Time {
	t, _ := common.ParseDay(s)
	return t
}

// Граница окна видимости: точка с истёкшим вчера сроком невидима сегодня,
// со сроком «сегодня» — ещё видима.
func TestVisibleOnExpiryBoundary(t *testing.T) {
	today := day("2026-08-30")

	yesterday := day("2026-08-29")
	expiredYesterday := &Spot{Date: day("2026-08-25"), ExpiryDate: &yesterday}
	assert.False(t, expiredYesterday.VisibleOn(today))

	expiresToday := &Spot{Date: day("2026-08-25"), ExpiryDate: &today}
	assert.True(t, expiresToday.VisibleOn(today))
}

func TestVisibleOnDateBoundary(t *testing.T) {
	today := day("2026-08-30")

	// Точка на завтра ещё не видна, сегодняшняя и вчерашняя — видны
	assert.False(t, (&Spot{Date: day("2026-08-31")}).VisibleOn(today))
	assert.True(t, (&Spot{Date: day("2026-08-30")}).VisibleOn(today))
	assert.True(t, (&Spot{Date: day("2026-08-29")}).VisibleOn(today))
}

func TestVisibleOnNoExpiry(t *testing.T) {
	// Бессрочная точка остаётся видимой сколь угодно поздно
	open := &Spot{Date: day("2026-01-01")}
	assert.True(t, open.VisibleOn(day("2026-12-31")))
}
