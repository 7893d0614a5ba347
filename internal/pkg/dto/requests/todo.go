package requests

type CreateTodo struct {
	Title       string `json:"title" validate:"required,max=255"`
	DueDate     string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SessionData string `json:"-"`
}

type FindTodos struct {
	SessionData string `json:"-"`
}

type UpdateTodo struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Completed   *bool   `json:"completed,omitempty"`
	DueDate     *string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TodoID      string  `json:"-"`
	SessionData string  `json:"-"`
}

type DeleteTodoByID struct {
	TodoID      string `json:"-"`
	SessionData string `json:"-"`
}
