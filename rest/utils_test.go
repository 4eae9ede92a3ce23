package rest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"newscleanse/domain"
	"newscleanse/utils/errors"
	"newscleanse/utils/timewindow"
)

func newTestContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"article not found", domain.ErrArticleNotFound, http.StatusNotFound},
		{"read session not found", domain.ErrReadSessionNotFound, http.StatusNotFound},
		{"user session not found", domain.ErrUserSessionNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("loading: %w", domain.ErrArticleNotFound), http.StatusNotFound},
		{"validation", errors.ValidationError("bad category", nil), http.StatusBadRequest},
		{"database", errors.DatabaseError("query failed", fmt.Errorf("boom"), nil), http.StatusInternalServerError},
		{"external api", errors.ExternalAPIError("recommender down", fmt.Errorf("boom"), nil), http.StatusBadGateway},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(t, "/v1/news/abc")
			require.NoError(t, handleError(c, tt.err, "test_op"))
			require.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHourlyActivityMode(t *testing.T) {
	tests := []struct {
		raw  string
		want timewindow.Mode
	}{
		{"", timewindow.ModeRolling},
		{"rolling", timewindow.ModeRolling},
		{"week", timewindow.ModeWeek},
		{"day", timewindow.ModeRolling},
		{"bogus", timewindow.ModeRolling},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, hourlyActivityMode(tt.raw), "mode %q", tt.raw)
	}
}

func TestFieldStatsDaysBounds(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   int
	}{
		{"absent uses single day", "/v1/news/user/7/field-stats", 1},
		{"in range", "/v1/news/user/7/field-stats?days=14", 14},
		{"clamped to a month", "/v1/news/user/7/field-stats?days=90", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(t, tt.target)
			require.Equal(t, tt.want, intQueryParam(c, "days", 1, 1, 30))
		})
	}
}

func TestIntQueryParam(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   int
	}{
		{"absent uses default", "/v1/news", 5},
		{"present", "/v1/news?similar_limit=8", 8},
		{"clamped high", "/v1/news?similar_limit=50", 12},
		{"clamped low", "/v1/news?similar_limit=0", 1},
		{"malformed uses default", "/v1/news?similar_limit=abc", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(t, tt.target)
			require.Equal(t, tt.want, intQueryParam(c, "similar_limit", 5, 1, 12))
		})
	}
}
