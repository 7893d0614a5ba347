package constvars

// Client-facing messages. These are the only strings that ever reach a
// response body; dev messages below stay in the logs outside production.
const (
	ErrClientCannotProcessRequest          = "We cannot process your request, please check again"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please contact our administrator"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientNotAuthorized                 = "You are not authorized to do this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password"
	ErrClientEmailAlreadyExists            = "Email is already registered"
	ErrClientTodoNotFound                  = "Todo not found"
	ErrClientTimeBlockInvalidHours         = "TimeBlock must have exactly 24 hours"
	ErrClientTimeBlockHourIndex            = "Hour index must be between 0 and 23"
	ErrClientDateRangeRequired             = "Start date and end date are required"
	ErrClientTooManyRequests               = "Too many requests, you are temporarily blocked"
)

const (
	ErrDevCannotParseJSON     = "Failed to parse JSON request body"
	ErrDevCannotParseDate     = "Failed to parse date value"
	ErrDevValidationFailed    = "Request validation failed"
	ErrDevInvalidInput        = "Invalid input"
	ErrDevMissingRequestID    = "Request ID not found in request context"
	ErrDevMissingSessionData  = "Session data not found in request context"
	ErrDevFailedToHashPassword = "Failed to hash password"

	ErrDevAuthTokenMissing          = "Authorization token is missing"
	ErrDevAuthTokenInvalid          = "Authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or expired"
	ErrDevAuthSigningMethod         = "Unexpected JWT signing method"
	ErrDevAuthGenerateToken         = "Failed to generate JWT token"
	ErrDevAuthInvalidSession        = "Session is invalid or expired"
	ErrDevInvalidCredentials        = "Invalid credentials supplied"
	ErrDevEmailAlreadyExists        = "Email already exists in users collection"

	ErrDevTodoNotFound  = "Todo document does not exist"
	ErrDevTodoNotOwner  = "Todo belongs to a different user"
	ErrDevServerDeadlineExceeded = "Server deadline exceeded"

	ErrDevTimeBlockInvalidHours = "TimeBlock hours slice length is not 24"
	ErrDevTimeBlockHourIndex    = "TimeBlock hour index outside [0, 23]"

	ErrDevDBFailedToFindDocument     = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument   = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "MongoDB failed to update document"
	ErrDevDBFailedToDeleteDocument   = "MongoDB failed to delete document"
	ErrDevDBFailedToIterateDocuments = "MongoDB failed to iterate documents"
	ErrDevDBStringNotObjectID        = "Provided string is not a valid ObjectID"

	ErrDevRedisSetData    = "Redis failed to set data"
	ErrDevRedisGetData    = "Redis failed to get data"
	ErrDevRedisDeleteData = "Redis failed to delete data"
)

const ResponseUnknown = "unknown"
