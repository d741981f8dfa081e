package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveTimezone(t *testing.T) {
	taipei := ResolveTimezone("Asia/Taipei", "UTC")
	assert.NotNil(t, taipei)
	assert.Equal(t, "Asia/Taipei", taipei.String())

	fallback := ResolveTimezone("Not/AZone", "America/New_York")
	assert.Equal(t, "America/New_York", fallback.String())

	empty := ResolveTimezone("", "America/New_York")
	assert.Equal(t, "America/New_York", empty.String())

	utc := ResolveTimezone("Not/AZone", "Also/Invalid")
	assert.Equal(t, time.UTC, utc)
}

func TestDayKey(t *testing.T) {
	loc := ResolveTimezone("Asia/Taipei", "UTC")

	// 23:00 UTC is already the next day in Taipei
	at := time.Date(2026, 2, 27, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-02-28", DayKey(at, loc))
	assert.Equal(t, "2026-02-27", DayKey(at, time.UTC))
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, "2026-03-01", AddDays("2026-02-28", 1))
	assert.Equal(t, "2026-02-22", AddDays("2026-02-28", -6))
}

func TestDayOffset(t *testing.T) {
	assert.Equal(t, 0, DayOffset("2026-02-28", "2026-02-28"))
	assert.Equal(t, 3, DayOffset("2026-02-26", "2026-03-01"))
	assert.Equal(t, -3, DayOffset("2026-03-01", "2026-02-26"))
}

func TestWeekStart(t *testing.T) {
	// 2026-02-28 is a Saturday
	assert.Equal(t, "2026-02-22", WeekStart("2026-02-28"))
	// a Sunday maps to itself
	assert.Equal(t, "2026-02-22", WeekStart("2026-02-22"))
}
