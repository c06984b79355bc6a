package serverutils

// AppError is a boundary error the error-handler middleware maps to a status
// code. Services return these for contractual failures (400/403/404/429/502);
// anything else becomes a 500.
type AppError struct {
	Status  int
	Message string
	Data    any // optional structured payload, e.g. rate-limit details
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

func NewAppErrorWithData(status int, message string, data any) *AppError {
	return &AppError{Status: status, Message: message, Data: data}
}
