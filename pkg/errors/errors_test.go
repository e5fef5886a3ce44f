package errors

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSkiffErrorString(t *testing.T) {
	err := &SkiffError{
		Op:   "engine.RenderHTML",
		Kind: KindParse,
		Err:  &ParseError{Msg: "unexpected end of input", Line: 3, Column: 7},
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
	if !strings.Contains(got, "engine.RenderHTML") {
		t.Errorf("error string %q should contain the op", got)
	}
	if !strings.Contains(got, "[parse]") {
		t.Errorf("error string %q should contain the kind", got)
	}
}

func TestSkiffErrorUnwrap(t *testing.T) {
	inner := &ParseError{Msg: "bad tag", Line: 1, Column: 2}
	err := &SkiffError{Op: "html.Parse", Kind: KindParse, Err: inner}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatal("expected errors.As to find the wrapped ParseError")
	}
	if parseErr.Line != 1 || parseErr.Column != 2 {
		t.Errorf("unexpected position %d:%d", parseErr.Line, parseErr.Column)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindInit, "init"},
		{KindParse, "parse"},
		{KindStyle, "style"},
		{KindRender, "render"},
		{KindStorage, "storage"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestParseErrorString(t *testing.T) {
	err := &ParseError{Msg: "unterminated comment", Line: 12, Column: 4}
	want := "parse error at 12:4: unterminated comment"
	if got := err.Error(); got != want {
		t.Errorf("ParseError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

// captureHandler records reported errors for inspection.
type captureHandler struct {
	errs   []*SkiffError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *SkiffError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func TestReportSetsTimestamp(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&SkiffError{Op: "test.op", Kind: KindRender, Err: errors.New("boom")})
	if len(h.errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(h.errs))
	}
	if h.errs[0].Timestamp.IsZero() {
		t.Error("expected Report to set a timestamp")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("test.panicking")
		panic("kaboom")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("expected 1 reported panic, got %d", len(h.panics))
	}
	if h.panics[0].Op != "test.panicking" {
		t.Errorf("expected op %q, got %q", "test.panicking", h.panics[0].Op)
	}
	if h.panics[0].Value != "kaboom" {
		t.Errorf("expected panic value %q, got %v", "kaboom", h.panics[0].Value)
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("expected default LogHandler, got %T", DefaultHandler)
	}
}
