package models

import (
	"time"
	"timegrid-service/internal/pkg/exceptions"
)

// HoursPerDay is the fixed length of a time block's occupancy vector,
// index 0 = hour 0 through index 23 = hour 23 of the block's day.
const HoursPerDay = 24

// TimeBlock is the per-user, per-day hour occupancy record. At most one
// document exists per (UserID, Date) pair; the mongo repository enforces
// that with a unique compound index. Date always holds midnight UTC of the
// calendar day.
type TimeBlock struct {
	ID     string    `json:"id"`
	UserID string    `json:"userId"`
	Date   time.Time `json:"date"`
	Hours  []bool    `json:"hours"`
	TimeModel
}

func NewTimeBlock(id, userID string, date time.Time, hours []bool) (*TimeBlock, error) {
	if len(hours) != HoursPerDay {
		return nil, exceptions.ErrTimeBlockInvalidHours(nil)
	}
	return &TimeBlock{
		ID:     id,
		UserID: userID,
		Date:   date,
		Hours:  hours,
	}, nil
}

// NewEmptyTimeBlock builds an unsaved all-false block for a user-day.
func NewEmptyTimeBlock(userID string, date time.Time) *TimeBlock {
	return &TimeBlock{
		UserID: userID,
		Date:   date,
		Hours:  make([]bool, HoursPerDay),
	}
}

// WithHourToggled returns a new block whose hour at index is negated.
// The receiver is never mutated; the hours slice is copied so concurrent
// readers of the old value stay safe.
func (tb *TimeBlock) WithHourToggled(hourIndex int) *TimeBlock {
	hours := make([]bool, HoursPerDay)
	copy(hours, tb.Hours)
	hours[hourIndex] = !hours[hourIndex]

	return &TimeBlock{
		ID:        tb.ID,
		UserID:    tb.UserID,
		Date:      tb.Date,
		Hours:     hours,
		TimeModel: tb.TimeModel,
	}
}
