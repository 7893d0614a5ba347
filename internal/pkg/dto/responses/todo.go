package responses

type Todo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	DueDate   string `json:"due_date,omitempty"`
	CreatedAt string `json:"created_at"`
}
