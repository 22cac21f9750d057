package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

func TestFromError_StatusByKind(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrInvalid("invalid_time_range", nil), http.StatusBadRequest, "invalid_time_range"},
		{ErrBusiness("invalid_state"), http.StatusBadRequest, "invalid_state"},
		{ErrNotFound("booking_not_found"), http.StatusNotFound, "booking_not_found"},
		{fmt.Errorf("create booking: %w", ErrConflict("slot_unavailable")), http.StatusConflict, "slot_unavailable"},
		{errors.New("connection reset"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		FromError(c, zap.NewNop(), tc.err)

		if w.Code != tc.status {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.status, w.Code)
		}

		var body HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Code != tc.code {
			t.Fatalf("%v: expected code %q, got %q", tc.err, tc.code, body.Code)
		}
	}
}

func TestFromError_InternalHidesMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	FromError(c, zap.NewNop(), errors.New("pq: password authentication failed"))

	var body HTTPError
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Message != "Erro interno." {
		t.Fatalf("expected generic message, got %q", body.Message)
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(ErrNotFound("x")) != KindNotFound {
		t.Fatalf("expected not_found kind")
	}
	if KindOf(errors.New("boom")) != KindInternal {
		t.Fatalf("expected internal kind")
	}
}

func TestIsExclusionConflict(t *testing.T) {
	if !IsExclusionConflict(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"})) {
		t.Fatalf("expected exclusion violation to be detected")
	}
	if IsExclusionConflict(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("expected foreign key violation to be ignored")
	}
	if IsExclusionConflict(errors.New("other")) {
		t.Fatalf("expected plain error to be ignored")
	}
}
