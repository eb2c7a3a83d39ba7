package apiclient

import (
	"fmt"
	"net/http"

	apperrors "github.com/proyectoslancha/pattymoda/pkg/errors"
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	*apperrors.BaseError
	StatusCode     int
	Path           string
	RequestID      string
	BackendMessage string
}

func newStatusError(status int, path, requestID, backendMessage string) *StatusError {
	msg := fmt.Sprintf("GET %s returned %d", path, status)
	if backendMessage != "" {
		msg = fmt.Sprintf("%s: %s", msg, backendMessage)
	}

	base := apperrors.NewBaseError(apperrors.DomainAPI, codeForStatus(status), msg, retryableStatus(status), nil,
		map[string]any{
			"http_status": status,
			"http_path":   path,
			"request_id":  requestID,
		})

	return &StatusError{
		BaseError:      base,
		StatusCode:     status,
		Path:           path,
		RequestID:      requestID,
		BackendMessage: backendMessage,
	}
}

// WithMetadata returns a copy of the StatusError with the key added to its
// metadata, so errors.As still finds a *StatusError on the result.
func (e *StatusError) WithMetadata(key string, value any) apperrors.DomainError {
	cp := *e
	cp.BaseError = e.BaseError.WithMetadata(key, value).(*apperrors.BaseError)
	return &cp
}

func codeForStatus(status int) string {
	switch {
	case status == http.StatusBadRequest:
		return apperrors.ErrCodeBadRequest
	case status == http.StatusUnauthorized:
		return apperrors.ErrCodeUnauthorized
	case status == http.StatusForbidden:
		return apperrors.ErrCodeForbidden
	case status == http.StatusNotFound:
		return apperrors.ErrCodeNotFound
	case status == http.StatusTooManyRequests:
		return apperrors.ErrCodeRateLimit
	case status >= 400 && status < 500:
		return apperrors.ErrCodeClientError
	case status >= 500 && status < 600:
		return apperrors.ErrCodeServerError
	default:
		return apperrors.ErrCodeUnexpectedCode
	}
}

// retryableStatus only marks the error; the client itself never retries.
func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || (status >= 500 && status < 600)
}
