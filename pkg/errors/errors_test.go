// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code inspection

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/eddy-geek/lsinput/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "target_resolve_error",
			code:    errors.ErrTargetResolve,
			message: "cannot resolve target",
			wantStr: "[TARGET_RESOLVE] cannot resolve target",
		},
		{
			name:    "dir_access_error",
			code:    errors.ErrDirAccess,
			message: "cannot open directory",
			wantStr: "[DIR_ACCESS] cannot open directory",
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

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("no such file or directory")
	err := errors.Wrap(cause, errors.ErrLinkRead, "cannot read link")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match the cause via errors.Is")
	}

	if got := err.Error(); got != "[LINK_READ] cannot read link: no such file or directory" {
		t.Errorf("Error() = %q", got)
	}

	if errors.Wrap(nil, errors.ErrLinkRead, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := errors.Wrapf(cause, errors.ErrDirAccess, "cannot open directory %s", "/dev/input/by-id")

	if err.Message != "cannot open directory /dev/input/by-id" {
		t.Errorf("Wrapf() message = %q", err.Message)
	}

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match the cause via errors.Is")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrTargetResolve, "gone")

	if !errors.IsErrorCode(err, errors.ErrTargetResolve) {
		t.Error("IsErrorCode should match the error's own code")
	}

	if errors.IsErrorCode(err, errors.ErrDirAccess) {
		t.Error("IsErrorCode should not match a different code")
	}

	// Codes must survive wrapping in plain errors.
	wrapped := fmt.Errorf("resolver failed: %w", err)
	if !errors.IsErrorCode(wrapped, errors.ErrTargetResolve) {
		t.Error("IsErrorCode should see through fmt.Errorf wrapping")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrTargetResolve) {
		t.Error("IsErrorCode should be false for plain errors")
	}
}

func TestGetErrorCode(t *testing.T) {
	err := errors.New(errors.ErrDeviceDir, "cannot open /dev/input")
	if got := errors.GetErrorCode(err); got != errors.ErrDeviceDir {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrDeviceDir)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrLinkResolve, "dangling link").
		WithDetail("path", "/alias/link1")

	if err.Details["path"] != "/alias/link1" {
		t.Errorf("WithDetail() details = %v", err.Details)
	}
}
