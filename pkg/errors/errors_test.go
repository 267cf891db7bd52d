// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, kinds and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/extlinker/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "source_missing_error",
			code:    errors.ErrSourceMissing,
			message: "source not found",
			wantStr: "[SOURCE_MISSING] source not found",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "empty path",
			wantStr: "[INVALID_INPUT] empty path",
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
	err := errors.Newf(errors.ErrTargetExists, "target %q already exists", "/app/ext/a")
	want := `target "/app/ext/a" already exists`
	if err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		if err.Code != errors.ErrInternal {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrInternal)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[INTERNAL] internal error: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrCopyFailed, "copy %s", "a.txt")
		if err.Message != "copy a.txt" {
			t.Errorf("Wrapf() message = %q", err.Message)
		}
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrFallbackExhausted, "neither worked").
		WithDetail("source", "/pkg/a").
		WithDetails(map[string]interface{}{"target": "/app/a"})

	if err.Details["source"] != "/pkg/a" {
		t.Errorf("WithDetail() source = %v", err.Details["source"])
	}
	if err.Details["target"] != "/app/a" {
		t.Errorf("WithDetails() target = %v", err.Details["target"])
	}

	details := errors.GetErrorDetails(err)
	if details["target"] != "/app/a" {
		t.Errorf("GetErrorDetails() target = %v", details["target"])
	}
	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for standard errors")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrTargetExists, "error 1")
	err2 := errors.New(errors.ErrTargetExists, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with LinkerError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrSourceMissing, "missing"),
			code:     errors.ErrSourceMissing,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrSourceMissing, "missing"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrSymlinkCreate, "denied"),
			code:     errors.ErrSymlinkCreate,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrSourceMissing,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrSourceMissing,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrManifestWrite, "x")); got != errors.ErrManifestWrite {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("x")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want UNKNOWN", got)
	}
	if got := errors.GetErrorCode(nil); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(nil) = %v, want UNKNOWN", got)
	}
}

func TestKinds(t *testing.T) {
	tests := []struct {
		code errors.ErrorCode
		kind errors.Kind
	}{
		{errors.ErrSourceMissing, errors.KindPrecondition},
		{errors.ErrTargetExists, errors.KindPrecondition},
		{errors.ErrInvalidInput, errors.KindPrecondition},
		{errors.ErrSymlinkCreate, errors.KindOperation},
		{errors.ErrCopyFailed, errors.KindOperation},
		{errors.ErrFallbackExhausted, errors.KindOperation},
		{errors.ErrUnsupportedFileType, errors.KindOperation},
		{errors.ErrDirCreate, errors.KindOperation},
		{errors.ErrRemoveFailed, errors.KindOperation},
		{errors.ErrConfigLoad, errors.KindOther},
		{errors.ErrManifestRead, errors.KindOther},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := errors.New(tt.code, "x")
			if got := errors.KindOf(err); got != tt.kind {
				t.Errorf("KindOf() = %v, want %v", got, tt.kind)
			}
			if errors.IsPrecondition(err) != (tt.kind == errors.KindPrecondition) {
				t.Errorf("IsPrecondition() mismatch for %s", tt.code)
			}
			if errors.IsOperation(err) != (tt.kind == errors.KindOperation) {
				t.Errorf("IsOperation() mismatch for %s", tt.code)
			}
		})
	}

	t.Run("outermost_kind_wins", func(t *testing.T) {
		inner := errors.New(errors.ErrSourceMissing, "gone")
		outer := errors.Wrap(inner, errors.ErrFallbackExhausted, "neither worked")
		if !errors.IsOperation(outer) {
			t.Error("wrapped precondition should report the outer operation kind")
		}
	})

	t.Run("standard_error_is_other", func(t *testing.T) {
		if errors.KindOf(stderrors.New("x")) != errors.KindOther {
			t.Error("standard errors should be KindOther")
		}
	})
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	copyErr := errors.Wrap(rootCause, errors.ErrCopyFailed, "cannot copy file")
	fallbackErr := errors.Wrap(copyErr, errors.ErrFallbackExhausted, "neither symlinking nor copying worked")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(fallbackErr, errors.ErrFallbackExhausted) {
			t.Error("Top level should have ErrFallbackExhausted code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var linkerErr *errors.LinkerError
		if stderrors.As(fallbackErr.Unwrap(), &linkerErr) {
			if !errors.IsErrorCode(linkerErr, errors.ErrCopyFailed) {
				t.Error("Middle error should have ErrCopyFailed code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(fallbackErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
