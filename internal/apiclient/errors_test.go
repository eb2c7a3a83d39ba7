package apiclient

import (
	"errors"
	"net/http"
	"testing"

	apperrors "github.com/proyectoslancha/pattymoda/pkg/errors"
)

func TestStatusError_WithMetadataKeepsType(t *testing.T) {
	original := newStatusError(http.StatusServiceUnavailable, "/dashboard/stats", "req-1", "maintenance")

	err := original.WithMetadata("attempt", 2)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %T", err)
	}
	if statusErr == original {
		t.Error("expected a copy, got the receiver")
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable || statusErr.Path != "/dashboard/stats" {
		t.Errorf("unexpected status fields: %d %s", statusErr.StatusCode, statusErr.Path)
	}
	if statusErr.BackendMessage != "maintenance" || statusErr.RequestID != "req-1" {
		t.Errorf("unexpected backend fields: %q %q", statusErr.BackendMessage, statusErr.RequestID)
	}
	if got := statusErr.Metadata()["attempt"]; got != 2 {
		t.Errorf("expected attempt metadata 2, got %v", got)
	}
	if got := statusErr.Metadata()["http_status"]; got != http.StatusServiceUnavailable {
		t.Errorf("expected http_status metadata to survive, got %v", got)
	}
	if _, ok := original.Metadata()["attempt"]; ok {
		t.Error("receiver metadata must not change")
	}
	if !apperrors.IsRetryable(err) || apperrors.GetErrorCode(err) != apperrors.ErrCodeServerError {
		t.Errorf("expected retryable %s, got %v", apperrors.ErrCodeServerError, err)
	}
	if !statusErr.Timestamp().Equal(original.Timestamp()) {
		t.Error("expected timestamp to be preserved")
	}
}
