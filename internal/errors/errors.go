package errors

import (
	"errors"
	"fmt"
)

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeAuth          ErrorType = "AUTH"
	TypeTransport     ErrorType = "TRANSPORT"
	TypeRemote        ErrorType = "REMOTE"
	TypeSession       ErrorType = "SESSION"
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeValidation    ErrorType = "VALIDATION"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error.
// MessageID points at the translated, user-facing variant of Message; Context
// doubles as its template data.
type AppError struct {
	Type       ErrorType
	Message    string
	MessageID  string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if status, ok := e.Context["Status"].(int); ok && status != 0 {
			msg += fmt.Sprintf(" - %d", status)
		}
		if remote, ok := e.Context["Message"].(string); ok && remote != "" {
			msg += fmt.Sprintf(" %s", remote)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches two AppErrors built from the same sentinel, so errors.Is keeps
// working after WithError/WithContext copies.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		MessageID:  e.MessageID,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		MessageID:  e.MessageID,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		MessageID:  e.MessageID,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// WithMessageID creates a new AppError rendered through the given translation key
func (e *AppError) WithMessageID(id string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		MessageID:  id,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// RemoteError is an HTTP error answered by the provider.
type RemoteError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("remote error %d", e.StatusCode)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err, or 0 when the provider never answered.
func StatusCode(err error) int {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.StatusCode
	}
	return 0
}

// Login errors
var (
	ErrMissingCredentials = NewAppError(TypeValidation, "user name and token are required", nil).
				WithMessageID("login.error_missing_fields")

	ErrInvalidCredentials = NewAppError(TypeAuth, "invalid credentials", nil).
				WithMessageID("login.error_invalid_credentials").
				WithSuggestion("Check the user name and create a new token at: https://github.com/settings/tokens")

	ErrMissingGistScope = NewAppError(TypeAuth, "token lacks gist permission", nil).
				WithMessageID("login.error_missing_scope").
				WithSuggestion("Regenerate the token with the 'gist' scope at: https://github.com/settings/tokens")

	ErrServerConnection = NewAppError(TypeTransport, "server connection failed", nil).
				WithMessageID("login.error_server_connection")

	ErrUnexpectedResponse = NewAppError(TypeRemote, "an error occurred", nil).
				WithMessageID("login.error_unexpected")
)

// Transport errors
var (
	ErrServerUnreachable = NewAppError(TypeTransport, "no response from server", nil).
		WithMessageID("login.error_server_connection")
)

// Ticket errors
var (
	ErrFetchTickets  = NewAppError(TypeRemote, "failed to fetch tickets", nil).WithMessageID("notice.error")
	ErrCreateTicket  = NewAppError(TypeRemote, "failed to create ticket", nil).WithMessageID("notice.error")
	ErrDeleteTicket  = NewAppError(TypeRemote, "failed to delete ticket", nil).WithMessageID("notice.error")
	ErrInvalidTicket = NewAppError(TypeValidation, "ticket is incomplete", nil).
				WithMessageID("add.error_validation")
	ErrMissingTicketID = NewAppError(TypeValidation, "ticket id is required", nil).
				WithMessageID("delete.error_missing_id").
				WithSuggestion("List ticket ids with: tickety list")
)

// Session and configuration errors
var (
	ErrNotLoggedIn = NewAppError(TypeSession, "not logged in", nil).
			WithMessageID("session.error_not_logged_in").
			WithSuggestion("Log in first: tickety login")

	ErrSessionStorage = NewAppError(TypeSession, "credentials could not be stored", nil).
				WithMessageID("session.error_storage")

	ErrConfigMissing = NewAppError(TypeConfiguration, "configuration is missing", nil).
				WithSuggestion("Check ~/.tickety/config.json or remove it to restore defaults")

	ErrUnsupportedLanguage = NewAppError(TypeConfiguration, "unsupported language", nil).
				WithMessageID("config.error_language")
)
