package errors

import (
	"bytes"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpotErrorString(t *testing.T) {
	err := &SpotError{
		Op:   "component.Decode",
		Kind: KindDecode,
		Err:  &DecodeError{Path: "version", Reason: "not a semantic version", Got: "one"},
	}
	assert.Equal(t, `component.Decode [decode]: invalid version: not a semantic version (got one)`, err.Error())
}

func TestSpotErrorWithSpot(t *testing.T) {
	err := &SpotError{
		Op:   "spots.Resolve",
		Kind: KindRegistry,
		Spot: "carousel",
		Err:  stderrors.New("no constructor"),
	}
	assert.Contains(t, err.Error(), "spot=carousel")
}

func TestSpotErrorUnwrap(t *testing.T) {
	inner := &DecodeError{Path: "components", Reason: "missing"}
	err := &SpotError{Op: "component.Decode", Kind: KindDecode, Err: inner}

	var target *DecodeError
	require.True(t, stderrors.As(err, &target))
	assert.Equal(t, "components", target.Path)
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindDecode, "decode"},
		{KindRegistry, "registry"},
		{KindLayout, "layout"},
		{KindSync, "sync"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String(), "ErrorKind(%d)", tt.kind)
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	assert.Equal(t, "panic: test panic", err.Error())

	err.Op = "scroll.LayoutViews"
	assert.Equal(t, "panic in scroll.LayoutViews: test panic", err.Error())
}

func TestReport(t *testing.T) {
	var captured *SpotError
	handler := &testHandler{onError: func(err *SpotError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&SpotError{Op: "test.op", Kind: KindLayout, Err: stderrors.New("boom")})

	require.NotNil(t, captured)
	assert.Equal(t, "test.op", captured.Op)
	assert.False(t, captured.Timestamp.IsZero(), "expected Timestamp to be set")
}

func TestReportNilIsNoop(t *testing.T) {
	called := false
	oldHandler := DefaultHandler
	SetHandler(&testHandler{onError: func(*SpotError) { called = true }})
	defer SetHandler(oldHandler)

	Report(nil)
	ReportPanic(nil)
	assert.False(t, called)
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	oldHandler := DefaultHandler
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	require.NotNil(t, captured)
	assert.Equal(t, "intentional test panic", captured.Value)
	assert.Equal(t, "test.recover", captured.Op)
	assert.NotEmpty(t, captured.StackTrace)
}

func TestRecoverWithCallback(t *testing.T) {
	oldHandler := DefaultHandler
	SetHandler(&testHandler{})
	defer SetHandler(oldHandler)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	assert.Equal(t, 42, got)
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	_, ok := DefaultHandler.(*LogHandler)
	assert.True(t, ok, "SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
}

func TestLogHandlerVerbose(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Verbose: true, Output: &buf}
	h.HandleError(&SpotError{
		Op:         "scroll.AddChild",
		Kind:       KindSync,
		Spot:       "list",
		Err:        stderrors.New("detached"),
		StackTrace: "frame",
	})
	out := buf.String()
	assert.Contains(t, out, "[spots error] scroll.AddChild [sync] spot=list: detached")
	assert.Contains(t, out, "Stack trace:\nframe")
}

func TestLogHandlerPanic(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Output: &buf}
	h.HandlePanic(&PanicError{Op: "layout.Prepare", Value: "oops", StackTrace: "hidden"})
	assert.Equal(t, "[spots panic] layout.Prepare: oops\n", buf.String())
}

type testHandler struct {
	onError func(*SpotError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *SpotError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
