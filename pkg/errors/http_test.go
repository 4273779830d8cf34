package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "clinic-assistant/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusConflict, "already exists")
	if err.Error() != "already exists" {
		t.Errorf("unexpected message: %s", err.Error())
	}

	wrapped := fmt.Errorf("handler: %w", err)
	var httpErr *pkgErrors.HTTPError
	if !errors.As(wrapped, &httpErr) {
		t.Fatal("expected errors.As to find HTTPError")
	}
	if httpErr.StatusCode != http.StatusConflict {
		t.Errorf("status = %d", httpErr.StatusCode)
	}
}
