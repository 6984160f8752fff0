package errors

import (
	"errors"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "resource not found",
			},
			want: "resource not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeInternal,
				Message: "failed to process",
				Cause:   errors.New("underlying error"),
			},
			want: "failed to process: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &AppError{
		Code:    ErrCodeInternal,
		Message: "wrapped error",
		Cause:   cause,
	}

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestAuthRejected(t *testing.T) {
	err := AuthRejected(401, "invalid credentials")
	if err.Code != ErrCodeAuthRejected {
		t.Errorf("AuthRejected().Code = %v, want %v", err.Code, ErrCodeAuthRejected)
	}
	if err.Status != 401 {
		t.Errorf("AuthRejected().Status = %v, want 401", err.Status)
	}
	if !IsAuthRejected(err) {
		t.Error("IsAuthRejected() = false, want true")
	}
	if GetStatus(err) != 401 {
		t.Errorf("GetStatus() = %v, want 401", GetStatus(err))
	}
}

func TestMalformedProfile(t *testing.T) {
	err := MalformedProfile("stored profile is not valid JSON")
	if err.Code != ErrCodeMalformedProfile {
		t.Errorf("MalformedProfile().Code = %v, want %v", err.Code, ErrCodeMalformedProfile)
	}
	if !IsMalformedProfile(err) {
		t.Error("IsMalformedProfile() = false, want true")
	}
}

func TestNotFoundf(t *testing.T) {
	err := NotFoundf("resource %s not found", "user")
	if err.Code != ErrCodeNotFound {
		t.Errorf("NotFoundf().Code = %v, want %v", err.Code, ErrCodeNotFound)
	}
	if err.Message != "resource user not found" {
		t.Errorf("NotFoundf().Message = %v, want %v", err.Message, "resource user not found")
	}
}

func TestValidationField(t *testing.T) {
	err := ValidationField("email", "invalid email format")
	if err.Code != ErrCodeValidation {
		t.Errorf("ValidationField().Code = %v, want %v", err.Code, ErrCodeValidation)
	}
	if err.Field != "email" {
		t.Errorf("ValidationField().Field = %v, want %v", err.Field, "email")
	}
	if GetField(err) != "email" {
		t.Errorf("GetField() = %v, want email", GetField(err))
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrCodeBackend, "wrapped error")

	if err.Code != ErrCodeBackend {
		t.Errorf("Wrap().Code = %v, want %v", err.Code, ErrCodeBackend)
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(Wrap(cause), cause) = false, want true")
	}
	if Wrap(nil, ErrCodeBackend, "x") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(Backend("down")); got != ErrCodeBackend {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeBackend)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}
