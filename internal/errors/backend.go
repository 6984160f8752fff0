package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// MapBackendError maps errors from calls to the remote library backend to
// AppError instances. It handles:
// - context timeouts/cancellations → Timeout/Canceled
// - network-level failures (dial, DNS, reset) → Backend
//
// If the error is not a recognized transport error, it returns the original error.
func MapBackendError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{
			Code:    ErrCodeTimeout,
			Message: "Request timed out. Please try again.",
			Cause:   err,
		}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{
			Code:    ErrCodeCanceled,
			Message: "Request was canceled.",
			Cause:   err,
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return &AppError{
				Code:    ErrCodeTimeout,
				Message: "The library backend did not respond in time.",
				Cause:   err,
			}
		}
		return &AppError{
			Code:    ErrCodeBackend,
			Message: "The library backend is unreachable.",
			Cause:   err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return &AppError{
			Code:    ErrCodeBackend,
			Message: "The library backend is unreachable.",
			Cause:   err,
		}
	}

	return err
}

// MapBackendStatus maps a non-2xx backend response to an AppError.
// The body excerpt, when present, is preserved in the message so the UI can
// surface the backend's own wording.
func MapBackendStatus(status int, body string) *AppError {
	msg := http.StatusText(status)
	if body != "" {
		msg = body
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return AuthRejected(status, msg)
	case status == http.StatusNotFound:
		return &AppError{Code: ErrCodeNotFound, Message: msg, Status: status}
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return &AppError{Code: ErrCodeValidation, Message: msg, Status: status}
	case status >= 500:
		return &AppError{
			Code:    ErrCodeBackend,
			Message: fmt.Sprintf("library backend error (%d)", status),
			Status:  status,
		}
	default:
		return &AppError{Code: ErrCodeInternal, Message: msg, Status: status}
	}
}
