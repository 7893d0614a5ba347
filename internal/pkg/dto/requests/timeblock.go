package requests

// ToggleTimeBlock carries one hour flip for one user-day. HourIndex is a
// pointer because 0 is a legitimate value; presence is checked explicitly,
// not with a zero-value test.
type ToggleTimeBlock struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	HourIndex   *int   `json:"hour_index" validate:"required"`
	SessionData string `json:"-"`
}

type GetWeeklyTimeBlocks struct {
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02"`
	SessionData string `json:"-"`
}
