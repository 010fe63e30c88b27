// Package apperror carries HTTP-mapped errors from the usecases to the
// handlers. The original API is not consistent about the JSON key the error
// text lives under ("error" vs "message") nor about the key for the
// underlying detail ("details" vs "error"), and that shape is part of the
// contract, so each error records its own keys.
package apperror

type AppError struct {
	Status    int
	Key       string
	Message   string
	DetailKey string
	Detail    string
}

func New(status int, key, message string) *AppError {
	return &AppError{Status: status, Key: key, Message: message}
}

// Detailed attaches the underlying error text under the given key.
func (e *AppError) Detailed(key, detail string) *AppError {
	e.DetailKey = key
	e.Detail = detail
	return e
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// Payload builds the JSON body for the response.
func (e *AppError) Payload() map[string]interface{} {
	body := map[string]interface{}{e.Key: e.Message}
	if e.DetailKey != "" {
		body[e.DetailKey] = e.Detail
	}
	return body
}
