package pkg

// AppError is the HTTP-facing error envelope. Usecases return sentinel
// errors; handlers translate them into an AppError with a stable code so
// clients can branch without parsing messages.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
