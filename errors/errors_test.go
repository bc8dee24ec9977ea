package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Format(t *testing.T) {
	err := &Error{
		Op:     OpInit,
		Kind:   KindSDKNotFound,
		Detail: "no Discord Game SDK library found",
	}

	got := err.Error()
	want := "[init] sdk_not_found: no Discord Game SDK library found"
	if got != want {
		t.Fatalf("Expected %q, got %q", want, got)
	}
}

func TestError_FormatWithCause(t *testing.T) {
	cause := fmt.Errorf("dlopen failed")
	err := Wrap(OpLoad, KindSDKNotFound, cause, "discord_game_sdk.so")

	got := err.Error()
	if !strings.Contains(got, "[load] sdk_not_found: discord_game_sdk.so") {
		t.Fatalf("Unexpected format: %q", got)
	}
	if !strings.Contains(got, "(caused by: dlopen failed)") {
		t.Fatalf("Cause not included: %q", got)
	}
}

func TestError_Is(t *testing.T) {
	err := SDKNotFound(OpInit, "missing", nil)

	if !stderrors.Is(err, &Error{Op: OpInit, Kind: KindSDKNotFound}) {
		t.Fatal("Expected Is match on (Op, Kind)")
	}
	if stderrors.Is(err, &Error{Op: OpPoll, Kind: KindSDKNotFound}) {
		t.Fatal("Expected no match on different Op")
	}
	if stderrors.Is(err, &Error{Op: OpInit, Kind: KindInternal}) {
		t.Fatal("Expected no match on different Kind")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Internal(OpBind, "resolve symbol", cause)

	if !stderrors.Is(err, cause) {
		t.Fatal("Expected Unwrap chain to reach cause")
	}
}

func TestClosed(t *testing.T) {
	err := Closed(OpPoll, "client")

	if err.Kind != KindClosed {
		t.Fatalf("Expected KindClosed, got %v", err.Kind)
	}
	if !strings.Contains(err.Error(), "client is closed") {
		t.Fatalf("Unexpected detail: %q", err.Error())
	}
}

func TestSDK(t *testing.T) {
	err := SDK(OpInit, KindNotRunning, 27, "NotRunning")

	if got := err.Error(); !strings.Contains(got, "NotRunning (result 27)") {
		t.Fatalf("Unexpected format: %q", got)
	}
}
