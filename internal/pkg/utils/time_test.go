package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeToDay(t *testing.T) {
	midnight := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)

	t.Run("strips the time of day", func(t *testing.T) {
		in := time.Date(2026, time.March, 9, 17, 42, 13, 999, time.UTC)
		assert.True(t, midnight.Equal(NormalizeToDay(in)))
	})

	t.Run("converts zoned times to UTC first", func(t *testing.T) {
		jakarta := time.FixedZone("WIB", 7*3600)
		in := time.Date(2026, time.March, 9, 9, 0, 0, 0, jakarta)
		assert.True(t, midnight.Equal(NormalizeToDay(in)))
	})

	t.Run("is idempotent", func(t *testing.T) {
		assert.True(t, midnight.Equal(NormalizeToDay(NormalizeToDay(midnight))))
	})
}

func TestParseDay(t *testing.T) {
	t.Run("parses a calendar day to midnight UTC", func(t *testing.T) {
		day, err := ParseDay("2026-03-09")
		assert.NoError(t, err)
		assert.True(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC).Equal(day))
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, value := range []string{"", "09-03-2026", "2026/03/09", "not-a-date"} {
			_, err := ParseDay(value)
			assert.Error(t, err, "value %q must be rejected", value)
		}
	})
}
