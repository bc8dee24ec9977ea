package discord

import (
	"fmt"

	"github.com/stagekit/discord-frame/errors"
)

// Result is an EDiscordResult code returned by the native SDK.
type Result int32

const (
	ResultOk                              Result = 0
	ResultServiceUnavailable              Result = 1
	ResultInvalidVersion                  Result = 2
	ResultLockFailed                      Result = 3
	ResultInternalError                   Result = 4
	ResultInvalidPayload                  Result = 5
	ResultInvalidCommand                  Result = 6
	ResultInvalidPermissions              Result = 7
	ResultNotFetched                      Result = 8
	ResultNotFound                        Result = 9
	ResultConflict                        Result = 10
	ResultInvalidSecret                   Result = 11
	ResultInvalidJoinSecret               Result = 12
	ResultNoEligibleActivity              Result = 13
	ResultInvalidInvite                   Result = 14
	ResultNotAuthenticated                Result = 15
	ResultInvalidAccessToken              Result = 16
	ResultApplicationMismatch             Result = 17
	ResultInvalidDataURL                  Result = 18
	ResultInvalidBase64                   Result = 19
	ResultNotFiltered                     Result = 20
	ResultLobbyFull                       Result = 21
	ResultInvalidLobbySecret              Result = 22
	ResultInvalidFilename                 Result = 23
	ResultInvalidFileSize                 Result = 24
	ResultInvalidEntitlement              Result = 25
	ResultNotInstalled                    Result = 26
	ResultNotRunning                      Result = 27
	ResultInsufficientBuffer              Result = 28
	ResultPurchaseCanceled                Result = 29
	ResultInvalidGuild                    Result = 30
	ResultInvalidEvent                    Result = 31
	ResultInvalidChannel                  Result = 32
	ResultInvalidOrigin                   Result = 33
	ResultRateLimited                     Result = 34
	ResultOAuth2Error                     Result = 35
	ResultSelectChannelTimeout            Result = 36
	ResultGetGuildTimeout                 Result = 37
	ResultSelectVoiceForceRequired        Result = 38
	ResultCaptureShortcutAlreadyListening Result = 39
	ResultUnauthorizedForAchievement      Result = 40
	ResultInvalidGiftCode                 Result = 41
	ResultPurchaseError                   Result = 42
	ResultTransactionAborted              Result = 43
)

var resultNames = map[Result]string{
	ResultOk:                              "Ok",
	ResultServiceUnavailable:              "ServiceUnavailable",
	ResultInvalidVersion:                  "InvalidVersion",
	ResultLockFailed:                      "LockFailed",
	ResultInternalError:                   "InternalError",
	ResultInvalidPayload:                  "InvalidPayload",
	ResultInvalidCommand:                  "InvalidCommand",
	ResultInvalidPermissions:              "InvalidPermissions",
	ResultNotFetched:                      "NotFetched",
	ResultNotFound:                        "NotFound",
	ResultConflict:                        "Conflict",
	ResultInvalidSecret:                   "InvalidSecret",
	ResultInvalidJoinSecret:               "InvalidJoinSecret",
	ResultNoEligibleActivity:              "NoEligibleActivity",
	ResultInvalidInvite:                   "InvalidInvite",
	ResultNotAuthenticated:                "NotAuthenticated",
	ResultInvalidAccessToken:              "InvalidAccessToken",
	ResultApplicationMismatch:             "ApplicationMismatch",
	ResultInvalidDataURL:                  "InvalidDataUrl",
	ResultInvalidBase64:                   "InvalidBase64",
	ResultNotFiltered:                     "NotFiltered",
	ResultLobbyFull:                       "LobbyFull",
	ResultInvalidLobbySecret:              "InvalidLobbySecret",
	ResultInvalidFilename:                 "InvalidFilename",
	ResultInvalidFileSize:                 "InvalidFileSize",
	ResultInvalidEntitlement:              "InvalidEntitlement",
	ResultNotInstalled:                    "NotInstalled",
	ResultNotRunning:                      "NotRunning",
	ResultInsufficientBuffer:              "InsufficientBuffer",
	ResultPurchaseCanceled:                "PurchaseCanceled",
	ResultInvalidGuild:                    "InvalidGuild",
	ResultInvalidEvent:                    "InvalidEvent",
	ResultInvalidChannel:                  "InvalidChannel",
	ResultInvalidOrigin:                   "InvalidOrigin",
	ResultRateLimited:                     "RateLimited",
	ResultOAuth2Error:                     "OAuth2Error",
	ResultSelectChannelTimeout:            "SelectChannelTimeout",
	ResultGetGuildTimeout:                 "GetGuildTimeout",
	ResultSelectVoiceForceRequired:        "SelectVoiceForceRequired",
	ResultCaptureShortcutAlreadyListening: "CaptureShortcutAlreadyListening",
	ResultUnauthorizedForAchievement:      "UnauthorizedForAchievement",
	ResultInvalidGiftCode:                 "InvalidGiftCode",
	ResultPurchaseError:                   "PurchaseError",
	ResultTransactionAborted:              "TransactionAborted",
}

// String returns the SDK's name for the result code.
func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Result(%d)", int32(r))
}

// Err returns nil for ResultOk and a structured error for any other code.
// The operation the result came from is supplied by the caller.
func (r Result) Err(op errors.Op) error {
	if r == ResultOk {
		return nil
	}
	return errors.SDK(op, kindFor(r), int32(r), r.String())
}

// kindFor maps result codes to error kinds. Only codes that callers
// reasonably branch on get their own kind; everything else is a generic
// SDK failure.
func kindFor(r Result) errors.Kind {
	switch r {
	case ResultNotInstalled:
		return errors.KindSDKNotFound
	case ResultNotRunning, ResultServiceUnavailable:
		return errors.KindNotRunning
	case ResultApplicationMismatch:
		return errors.KindInvalidClientID
	case ResultInternalError:
		return errors.KindInternal
	default:
		return errors.KindSDKFailure
	}
}
