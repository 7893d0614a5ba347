package constvars

const (
	URLParamTodoID = "todo_id"
)

const (
	URLQueryParamStartDate = "start_date"
	URLQueryParamEndDate   = "end_date"
)
