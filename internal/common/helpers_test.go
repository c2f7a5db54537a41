package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.August, d.Month())
	assert.Equal(t, 30, d.Day())

	_, err = ParseDay("30.08.2026")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDay("")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestFormatDayRoundTrip(t *testing.T) {
	d, err := ParseDay("2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05", FormatDay(d))
}

func TestTruncate(t *testing.T) {
	loc := time.FixedZone("BST", 6*60*60)
	ts := time.Date(2026, 8, 30, 17, 42, 13, 500, loc)

	day := Truncate(ts)
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, 0, day.Minute())
	assert.Equal(t, 0, day.Second())
	assert.Equal(t, 30, day.Day())
	assert.Equal(t, loc, day.Location())
}

func TestGetDhakaDateIsMidnight(t *testing.T) {
	day := GetDhakaDate()
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, 0, day.Minute())
}
