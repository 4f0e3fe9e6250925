package errors

import (
	stderrors "errors"
	"testing"
	"time"
)

type testHandler struct {
	onError func(err *Error)
	onPanic func(err *PanicError)
}

func (h *testHandler) HandleError(err *Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "marquee.LoadConfig",
		Kind: KindConfig,
		Err:  stderrors.New("bad yaml"),
	}
	got := err.Error()
	want := "marquee.LoadConfig [config]: bad yaml"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := stderrors.New("inner")
	err := &Error{Op: "test.op", Kind: KindCallback, Err: inner}
	if !stderrors.Is(err, inner) {
		t.Error("expected Unwrap to reach the inner error")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindCallback, "callback"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{Op: "marquee.onScroll", Value: "boom"}
	if got, want := err.Error(), "panic in marquee.onScroll: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *Error
	SetHandler(&testHandler{onError: func(err *Error) { captured = err }})
	defer SetHandler(nil)

	Report(&Error{Op: "test.op", Kind: KindConfig, Err: stderrors.New("x")})

	if captured == nil {
		t.Fatal("expected error to reach the handler")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be filled in")
	}
}

func TestReportNilIsNoop(t *testing.T) {
	called := false
	SetHandler(&testHandler{onError: func(*Error) { called = true }})
	defer SetHandler(nil)

	Report(nil)
	if called {
		t.Error("nil report should not reach the handler")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	var captured *PanicError
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(nil)

	func() {
		defer Recover("test.frame")
		panic("boom")
	}()

	if captured == nil {
		t.Fatal("expected panic to reach the handler")
	}
	if captured.Op != "test.frame" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.frame")
	}
	if captured.Value != "boom" {
		t.Errorf("Value = %v, want boom", captured.Value)
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be filled in")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&testHandler{})
	SetHandler(nil)
	if _, ok := getHandler().(*LogHandler); !ok {
		t.Errorf("handler = %T, want *LogHandler", getHandler())
	}
}
