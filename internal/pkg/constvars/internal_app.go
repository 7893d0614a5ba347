package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
)

const (
	ResourceAuth       = "auth"
	ResourceTodos      = "todos"
	ResourceTimeBlocks = "timeblocks"
)

// DateLayout is the wire format for calendar days. Every stored time block
// date is this day at midnight UTC so the (userId, date) key stays stable.
const DateLayout = "2006-01-02"
