package constvars

const (
	RegisterSuccessMessage = "Successfully registered user"
	LoginSuccessMessage    = "Successfully logged in"
	LogoutSuccessMessage   = "Successfully logged out"

	CreateTodoSuccessMessage = "Successfully created todo"
	FindTodosSuccessMessage  = "Successfully fetched todos"
	UpdateTodoSuccessMessage = "Successfully updated todo"
	DeleteTodoSuccessMessage = "Successfully deleted todo"

	ToggleTimeBlockSuccessMessage  = "Successfully toggled time block"
	WeeklyTimeBlocksSuccessMessage = "Successfully fetched time blocks"
)
