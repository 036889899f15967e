package schemas

// CustomError is the error payload returned to clients.
// Code is a stable machine-readable identifier, Message is meant for humans.
type CustomError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

var (
	BadRequest = &CustomError{
		Message: "The request body is invalid. Please check the request body and try again.",
		Code:    "ERR-001",
	}
	UserAlreadyExists = &CustomError{
		Message: "The email or username is already registered.",
		Code:    "ERR-002",
	}
	InvalidCredentials = &CustomError{
		Message: "The credentials are invalid. Please check the credentials and try again.",
		Code:    "ERR-003",
	}
	UserNotFound = &CustomError{
		Message: "The user was not found.",
		Code:    "ERR-004",
	}
	UserInactive = &CustomError{
		Message: "The user is inactive.",
		Code:    "ERR-005",
	}
	InvalidToken = &CustomError{
		Message: "The token is invalid. Please login again.",
		Code:    "ERR-006",
	}
	Unauthorized = &CustomError{
		Message: "The request is unauthorized. Please login to your account.",
		Code:    "ERR-007",
	}
	EventNotFound = &CustomError{
		Message: "The event was not found.",
		Code:    "ERR-008",
	}
	InvalidEventTiming = &CustomError{
		Message: "end_time must be greater than start_time.",
		Code:    "ERR-009",
	}
	TodoNotFound = &CustomError{
		Message: "The todo was not found.",
		Code:    "ERR-010",
	}
	BadGateway = &CustomError{
		Message: "The upstream service is not reachable. Please try again later.",
		Code:    "ERR-011",
	}
	DatabaseError = &CustomError{
		Message: "A database error occurred. Please try again later.",
		Code:    "ERR-012",
	}
	InternalServerError = &CustomError{
		Message: "An internal server error occurred. Please try again later.",
		Code:    "ERR-013",
	}
)
