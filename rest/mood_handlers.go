package rest

import (
	"net/http"

	"newscleanse/di"
	"newscleanse/domain"

	"github.com/labstack/echo/v4"
)

func registerMoodRoutes(g *echo.Group, container *di.ApplicationComponents) {
	g.POST("/news/mood/event", moodEventHandler(container))
	g.GET("/news/mood/user/:user_id/snapshot", moodSnapshotHandler(container))
}

func moodEventHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req MoodEventRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		if req.UserID <= 0 {
			return badRequest(c, "user_id must be positive")
		}

		ev := &domain.MoodEvent{
			UserID:    req.UserID,
			Delta:     req.Delta,
			Reason:    req.Reason,
			Attitude:  req.Attitude,
			ArticleID: req.ArticleID,
		}
		if req.Timestamp != nil {
			ev.Timestamp = req.Timestamp.UTC()
		}

		id, err := container.MoodUsecase.Record(c.Request().Context(), ev)
		if err != nil {
			return handleError(c, err, "mood_event")
		}
		return c.JSON(http.StatusCreated, MoodEventResponse{Inserted: id})
	}
}

func moodSnapshotHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := pathUserID(c)
		if err != nil {
			return badRequest(c, "user_id must be an integer")
		}

		// days is accepted for compatibility; the snapshot window is
		// fixed at one week.
		_ = c.QueryParam("days")

		snapshot, err := container.MoodUsecase.Snapshot(c.Request().Context(), userID)
		if err != nil {
			return handleError(c, err, "mood_snapshot")
		}
		return c.JSON(http.StatusOK, snapshot)
	}
}
