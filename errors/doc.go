// Package errors provides the structured error type used across the
// discord-frame packages.
//
// Every error carries the operation that produced it and a kind that
// categorizes the failure:
//
//	[init] sdk_not_found: no Discord Game SDK library found
//	[poll] not_running: NotRunning (result 27)
//
// Errors compare with errors.Is by (Op, Kind), so callers can match on
// category without looking at the detail text:
//
//	if errors.Is(err, &errors.Error{Op: errors.OpInit, Kind: errors.KindSDKNotFound}) {
//	    // SDK library missing; feature stays off for this process
//	}
package errors
