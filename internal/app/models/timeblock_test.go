package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeBlock_HoursLengthInvariant(t *testing.T) {
	day := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)

	for _, length := range []int{0, 1, 23, 25, 100} {
		timeBlock, err := NewTimeBlock("tb-1", "user-1", day, make([]bool, length))

		assert.Nil(t, timeBlock, "length %d must be rejected", length)
		assert.Error(t, err, "length %d must be rejected", length)
	}

	timeBlock, err := NewTimeBlock("tb-1", "user-1", day, make([]bool, HoursPerDay))
	assert.NoError(t, err)
	assert.Len(t, timeBlock.Hours, HoursPerDay)
}

func TestNewEmptyTimeBlock_AllHoursFree(t *testing.T) {
	day := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)

	timeBlock := NewEmptyTimeBlock("user-1", day)

	assert.Empty(t, timeBlock.ID)
	assert.Equal(t, "user-1", timeBlock.UserID)
	assert.Len(t, timeBlock.Hours, HoursPerDay)
	for hour, occupied := range timeBlock.Hours {
		assert.False(t, occupied, "hour %d must start free", hour)
	}
}

func TestWithHourToggled_DoesNotMutateReceiver(t *testing.T) {
	day := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	original := NewEmptyTimeBlock("user-1", day)

	toggled := original.WithHourToggled(5)

	assert.True(t, toggled.Hours[5])
	assert.False(t, original.Hours[5], "receiver hours must stay untouched")

	backAgain := toggled.WithHourToggled(5)
	assert.False(t, backAgain.Hours[5], "second toggle must restore the hour")
	assert.True(t, toggled.Hours[5], "intermediate value must stay untouched")
}

func TestWithHourToggled_PreservesIdentity(t *testing.T) {
	day := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	original, err := NewTimeBlock("tb-1", "user-1", day, make([]bool, HoursPerDay))
	assert.NoError(t, err)

	toggled := original.WithHourToggled(0)

	assert.Equal(t, original.ID, toggled.ID)
	assert.Equal(t, original.UserID, toggled.UserID)
	assert.True(t, original.Date.Equal(toggled.Date))
}
