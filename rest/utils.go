package rest

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"newscleanse/domain"
	"newscleanse/utils/errors"
	"newscleanse/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError maps domain and application errors onto HTTP responses.
func handleError(c echo.Context, err error, operation string) error {
	ctx := c.Request().Context()

	switch {
	case stderrors.Is(err, domain.ErrArticleNotFound),
		stderrors.Is(err, domain.ErrReadSessionNotFound),
		stderrors.Is(err, domain.ErrUserSessionNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	}

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		logger.SafeErrorContext(ctx, "request failed",
			"operation", operation, "code", string(appErr.Code), "error", appErr.Message)
		switch appErr.Code {
		case errors.ErrCodeValidation:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: appErr.Message})
		case errors.ErrCodeNotFound:
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: appErr.Message})
		case errors.ErrCodeExternalAPI:
			return c.JSON(http.StatusBadGateway, ErrorResponse{Error: appErr.Message})
		case errors.ErrCodeTimeout:
			return c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: appErr.Message})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: appErr.Message})
		}
	}

	logger.SafeErrorContext(ctx, "request failed",
		"operation", operation, "error", err.Error())
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// intQueryParam parses a query parameter, clamping to [min, max] and
// falling back to def when absent or malformed.
func intQueryParam(c echo.Context, name string, def, min, max int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func pathUserID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("user_id"), 10, 64)
}
