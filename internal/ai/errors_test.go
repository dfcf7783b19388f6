package ai

import (
	"errors"
	"net/url"
	"testing"

	"github.com/sony/gobreaker"
	"google.golang.org/api/googleapi"
)

func TestClassifyBreakerOpen(t *testing.T) {
	svcErr := Classify(gobreaker.ErrOpenState)
	if svcErr.Code != CodeServiceUnavailable {
		t.Errorf("Expected SERVICE_UNAVAILABLE, got %s", svcErr.Code)
	}
	if !svcErr.Retryable {
		t.Errorf("SERVICE_UNAVAILABLE must be retryable")
	}
}

func TestClassifyGoogleAPIErrors(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		want      ErrorCode
		retryable bool
	}{
		{"unauthorized", &googleapi.Error{Code: 401, Message: "invalid session"}, CodeUnauthorized, true},
		{"key leaked", &googleapi.Error{Code: 403, Message: "API key reported as leaked"}, CodeAPIKeyLeaked, false},
		{"key revoked", &googleapi.Error{Code: 403, Message: "credential revoked"}, CodeAPIKeyLeaked, false},
		{"permission denied", &googleapi.Error{Code: 403, Message: "request disallowed"}, CodePermissionDenied, false},
		{"auth check", &googleapi.Error{Code: 400, Message: "API key not valid"}, CodeAuthCheckFailed, true},
		{"overloaded", &googleapi.Error{Code: 503, Message: "overloaded"}, CodeServiceUnavailable, true},
		{"server error", &googleapi.Error{Code: 500, Message: "boom"}, CodeUnknownError, true},
	}

	for _, tc := range cases {
		svcErr := Classify(tc.err)
		if svcErr.Code != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.name, tc.want, svcErr.Code)
		}
		if svcErr.Retryable != tc.retryable {
			t.Errorf("%s: expected retryable=%v, got %v", tc.name, tc.retryable, svcErr.Retryable)
		}
		if svcErr.Message == "" {
			t.Errorf("%s: localized message must not be empty", tc.name)
		}
	}
}

func TestClassifyNetworkError(t *testing.T) {
	netErr := &url.Error{Op: "Post", URL: "https://example.com", Err: errors.New("connection refused")}
	svcErr := Classify(netErr)
	if svcErr.Code != CodeNetworkError {
		t.Errorf("Expected NETWORK_ERROR, got %s", svcErr.Code)
	}
	if !svcErr.Retryable {
		t.Errorf("NETWORK_ERROR must be retryable")
	}
}

func TestClassifyUnknown(t *testing.T) {
	svcErr := Classify(errors.New("something else"))
	if svcErr.Code != CodeUnknownError {
		t.Errorf("Expected UNKNOWN_ERROR, got %s", svcErr.Code)
	}
}

func TestClassifyPassthrough(t *testing.T) {
	original := NewServiceError(CodeInvalidInput, nil)
	svcErr := Classify(original)
	if svcErr != original {
		t.Errorf("Already-classified errors must pass through unchanged")
	}
	if svcErr.Retryable {
		t.Errorf("INVALID_INPUT must not be retryable")
	}
}

func TestServiceErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	svcErr := NewServiceError(CodeNetworkError, cause)
	if !errors.Is(svcErr, cause) {
		t.Errorf("ServiceError must unwrap to its cause")
	}
}
