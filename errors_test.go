package img2ascii

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		sentinel error
		message  string
	}{
		{KindInputNotFound, ErrInputNotFound, "could not find the file, the path may be incorrect"},
		{KindUnsupportedFormat, ErrUnsupportedFormat, "incorrect file format"},
		{KindInvalidNumericInput, ErrInvalidNumericInput, "incorrect input"},
		{KindInvalidMode, ErrInvalidMode, "incorrect input"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := fmt.Errorf("context: %w", newError(tt.kind, "x", nil))
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%v, sentinel) = false", err)
			}
			if KindOf(err) != tt.kind {
				t.Errorf("KindOf = %v, want %v", KindOf(err), tt.kind)
			}
			if tt.kind.Message() != tt.message {
				t.Errorf("Message() = %q, want %q", tt.kind.Message(), tt.message)
			}
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	err := newError(KindInputNotFound, "cat.png", fs.ErrNotExist)
	want := `input not found: "cat.png": file does not exist`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("cause is not reachable through Unwrap")
	}
	if errors.Is(err, ErrUnsupportedFormat) {
		t.Error("error matches the wrong sentinel")
	}

	if got := newError(KindInvalidMode, "4", nil).Error(); got != `invalid mode: "4"` {
		t.Errorf("Error() = %q", got)
	}
	if KindOf(errors.New("plain")) != KindUnknown {
		t.Error("plain error should be KindUnknown")
	}
}
