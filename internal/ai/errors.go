package ai

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"

	"github.com/sony/gobreaker"
	"google.golang.org/api/googleapi"
)

// ErrorCode is the symbolic kind of an assistant failure.
type ErrorCode string

const (
	CodeInvalidInput       ErrorCode = "INVALID_INPUT"
	CodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeAPIKeyLeaked       ErrorCode = "API_KEY_LEAKED"
	CodePermissionDenied   ErrorCode = "PERMISSION_DENIED"
	CodeAuthCheckFailed    ErrorCode = "AUTH_CHECK_FAILED"
	CodeNetworkError       ErrorCode = "NETWORK_ERROR"
	CodeUnknownError       ErrorCode = "UNKNOWN_ERROR"
)

// ServiceError is a classified assistant failure. Message is user-facing
// Burmese text; Retryable tells the UI whether to re-enable the triggering
// control.
type ServiceError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Retryable bool      `json:"isRetryable"`
	cause     error
}

func (e *ServiceError) Error() string {
	if e.cause != nil {
		return string(e.Code) + ": " + e.cause.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.cause
}

// localized user-facing messages, keyed by code
var messages = map[ErrorCode]string{
	CodeInvalidInput:       "ထည့်သွင်းထားသော အချက်အလက် မမှန်ကန်ပါ။ ပြန်လည်စစ်ဆေးပေးပါ။",
	CodeServiceUnavailable: "AI ဝန်ဆောင်မှု လောလောဆယ် မရရှိနိုင်ပါ။ ခဏအကြာတွင် ထပ်မံကြိုးစားကြည့်ပါ။",
	CodeUnauthorized:       "AI ဝန်ဆောင်မှုသို့ ဝင်ရောက်ခွင့် မအောင်မြင်ပါ။ ထပ်မံကြိုးစားကြည့်ပါ။",
	CodeAPIKeyLeaked:       "API သော့ ပိတ်သိမ်းခံထားရပါသည်။ သော့အသစ် ပြောင်းလဲသတ်မှတ်ပေးပါ။",
	CodePermissionDenied:   "ဤတောင်းဆိုမှုအတွက် ခွင့်ပြုချက် မရှိပါ။",
	CodeAuthCheckFailed:    "အထောက်အထား စစ်ဆေးမှု မအောင်မြင်ပါ။ ထပ်မံကြိုးစားကြည့်ပါ။",
	CodeNetworkError:       "ကွန်ရက်ချိတ်ဆက်မှု ပြဿနာရှိနေပါသည်။ ချိတ်ဆက်မှုကို စစ်ဆေးပြီး ထပ်မံကြိုးစားပါ။",
	CodeUnknownError:       "မမျှော်လင့်ထားသော ပြဿနာ ဖြစ်ပွားခဲ့ပါသည်။ ထပ်မံကြိုးစားကြည့်ပါ။",
}

var retryable = map[ErrorCode]bool{
	CodeInvalidInput:       false,
	CodeServiceUnavailable: true,
	CodeUnauthorized:       true,
	CodeAPIKeyLeaked:       false,
	CodePermissionDenied:   false,
	CodeAuthCheckFailed:    true,
	CodeNetworkError:       true,
	CodeUnknownError:       true,
}

// NewServiceError builds a ServiceError for the given code, preserving the
// underlying cause for logs.
func NewServiceError(code ErrorCode, cause error) *ServiceError {
	return &ServiceError{
		Code:      code,
		Message:   messages[code],
		Retryable: retryable[code],
		cause:     cause,
	}
}

// Classify maps a raw transport error onto the service error taxonomy.
// Already-classified errors pass through unchanged.
func Classify(err error) *ServiceError {
	if err == nil {
		return nil
	}

	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return NewServiceError(CodeServiceUnavailable, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401:
			return NewServiceError(CodeUnauthorized, err)
		case 403:
			if containsAny(apiErr.Message, "leaked", "compromised", "revoked") {
				return NewServiceError(CodeAPIKeyLeaked, err)
			}
			return NewServiceError(CodePermissionDenied, err)
		case 400:
			if containsAny(apiErr.Message, "API key", "API_KEY") {
				return NewServiceError(CodeAuthCheckFailed, err)
			}
		case 503:
			return NewServiceError(CodeServiceUnavailable, err)
		}
		return NewServiceError(CodeUnknownError, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NewServiceError(CodeNetworkError, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return NewServiceError(CodeNetworkError, err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return NewServiceError(CodeNetworkError, err)
	}

	return NewServiceError(CodeUnknownError, err)
}

func containsAny(s string, subs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}
