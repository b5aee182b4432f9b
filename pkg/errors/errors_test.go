// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/proflink/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "profile source not found",
			wantStr: "[NOT_FOUND] profile source not found",
		},
		{
			name:    "scope_invalid_error",
			code:    errors.ErrScopeInvalid,
			message: "unknown profile scope",
			wantStr: "[SCOPE_INVALID] unknown profile scope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrShellInvalid, "unknown shell token %q", "fish")

	want := `[SHELL_INVALID] unknown shell token "fish"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("permission denied")
	err := errors.Wrap(inner, errors.ErrSymlinkCreate, "cannot create link")

	want := "[SYMLINK_CREATE] cannot create link: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !stderrors.Is(err, inner) {
		t.Error("wrapped error should match errors.Is against the inner error")
	}

	if got := stderrors.Unwrap(err); got != inner {
		t.Errorf("Unwrap() = %v, want %v", got, inner)
	}
}

func TestWrap_NilPassthrough(t *testing.T) {
	if err := errors.Wrap(nil, errors.ErrInternal, "ignored"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
	if err := errors.Wrapf(nil, errors.ErrInternal, "ignored %d", 1); err != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", err)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrElevation, "elevation denied").
		WithDetail("target", `C:\Windows\profile.ps1`).
		WithDetail("scope", "AllUsersAllHosts")

	if len(err.Details) != 2 {
		t.Errorf("Details has %d entries, want 2", len(err.Details))
	}
	if err.Details["scope"] != "AllUsersAllHosts" {
		t.Errorf("Details[scope] = %v", err.Details["scope"])
	}
}

func TestIsErrorCode(t *testing.T) {
	inner := errors.New(errors.ErrClone, "clone failed")
	wrapped := errors.Wrap(inner, errors.ErrInternal, "theme setup failed")

	if !errors.IsErrorCode(inner, errors.ErrClone) {
		t.Error("IsErrorCode should match the direct code")
	}
	if !errors.IsErrorCode(wrapped, errors.ErrInternal) {
		t.Error("IsErrorCode should match the outermost code")
	}
	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrClone) {
		t.Error("IsErrorCode should not match a plain error")
	}
	if errors.IsErrorCode(nil, errors.ErrClone) {
		t.Error("IsErrorCode should not match nil")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrConfigLoad, "x")); got != errors.ErrConfigLoad {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrConfigLoad)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}
}
