package responses

type TimeBlock struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Hours []bool `json:"hours"`
}
