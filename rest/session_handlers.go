package rest

import (
	"net/http"

	"newscleanse/di"
	"newscleanse/usecase/read_session_usecase"

	"github.com/labstack/echo/v4"
)

func registerSessionRoutes(g *echo.Group, container *di.ApplicationComponents) {
	g.POST("/news/:article_id/open", openReadHandler(container))
	g.POST("/news/:article_id/close", closeReadHandler(container))
	g.POST("/news/events", ingestEventsHandler(container))
	g.POST("/users/sessions/start", startSessionHandler(container))
	g.POST("/users/sessions/end", endSessionHandler(container))
}

func openReadHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req OpenReadRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		if req.UserID <= 0 {
			return badRequest(c, "user_id must be positive")
		}

		readID, err := container.ReadSessionUsecase.Open(c.Request().Context(), req.UserID, c.Param("article_id"))
		if err != nil {
			return handleError(c, err, "open_read")
		}
		return c.JSON(http.StatusCreated, OpenReadResponse{ReadID: readID})
	}
}

func closeReadHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req CloseReadRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		if req.UserID <= 0 || req.ReadID <= 0 {
			return badRequest(c, "user_id and read_id must be positive")
		}

		result, err := container.ReadSessionUsecase.Close(c.Request().Context(), req.UserID, c.Param("article_id"), req.ReadID)
		if err != nil {
			return handleError(c, err, "close_read")
		}
		return c.JSON(http.StatusOK, CloseReadResponse{
			DwellSeconds:  result.DwellSeconds,
			AlreadyClosed: result.AlreadyClosed,
		})
	}
}

func ingestEventsHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req IngestEventsRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		if len(req.Events) == 0 {
			return badRequest(c, "events must not be empty")
		}

		raw := make([]read_session_usecase.RawEvent, 0, len(req.Events))
		for _, ev := range req.Events {
			raw = append(raw, read_session_usecase.RawEvent{
				UserID:    ev.UserID,
				EventType: ev.EventType,
				ArticleID: ev.ArticleID,
				Meta:      ev.Meta,
				Timestamp: ev.Timestamp,
			})
		}

		result, err := container.ReadSessionUsecase.Ingest(c.Request().Context(), raw)
		if err != nil {
			return handleError(c, err, "ingest_events")
		}
		return c.JSON(http.StatusCreated, result)
	}
}

func startSessionHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req StartSessionRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		if req.UserID <= 0 {
			return badRequest(c, "user_id must be positive")
		}

		sessionID, err := container.UserSessionUsecase.Start(c.Request().Context(), req.UserID)
		if err != nil {
			return handleError(c, err, "start_session")
		}
		return c.JSON(http.StatusCreated, StartSessionResponse{SessionID: sessionID})
	}
}

func endSessionHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req EndSessionRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		if req.UserID <= 0 || req.SessionID <= 0 {
			return badRequest(c, "user_id and session_id must be positive")
		}

		seconds, err := container.UserSessionUsecase.End(c.Request().Context(), req.SessionID, req.UserID)
		if err != nil {
			return handleError(c, err, "end_session")
		}
		return c.JSON(http.StatusOK, EndSessionResponse{Seconds: seconds})
	}
}
