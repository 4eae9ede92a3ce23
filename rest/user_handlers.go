package rest

import (
	"net/http"

	"newscleanse/config"
	"newscleanse/di"
	"newscleanse/usecase/engagement_usecase"
	"newscleanse/utils/timewindow"

	"github.com/labstack/echo/v4"
)

func registerUserRoutes(g *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	g.GET("/news/user/:user_id/feed/home", homeFeedHandler(container))
	g.GET("/news/user/:user_id/today", userTodayHandler(container))
	g.GET("/news/user/:user_id/reads/:window", userReadsHandler(container, cfg))
	g.GET("/news/user/:user_id/field-stats", fieldStatsHandler(container))
	g.GET("/news/user/:user_id/hourly-activity", hourlyActivityHandler(container))
	g.GET("/news/user/:user_id/usage/hourly", usageHourlyHandler(container))
}

func homeFeedHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := pathUserID(c)
		if err != nil {
			return badRequest(c, "user_id must be an integer")
		}
		excludeRead := c.QueryParam("exclude_read") != "false"

		feed, err := container.HomeFeedUsecase.Execute(c.Request().Context(), userID, excludeRead)
		if err != nil {
			return handleError(c, err, "home_feed")
		}
		return c.JSON(http.StatusOK, feed)
	}
}

func userTodayHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := pathUserID(c)
		if err != nil {
			return badRequest(c, "user_id must be an integer")
		}

		today, err := container.EngagementUsecase.UserToday(c.Request().Context(), userID)
		if err != nil {
			return handleError(c, err, "user_today")
		}
		return c.JSON(http.StatusOK, today)
	}
}

func userReadsHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := pathUserID(c)
		if err != nil {
			return badRequest(c, "user_id must be an integer")
		}

		var mode timewindow.Mode
		switch c.Param("window") {
		case "today":
			mode = timewindow.ModeDay
		case "week":
			mode = timewindow.ModeWeek
		default:
			return badRequest(c, "window must be today or week")
		}

		limit := intQueryParam(c, "limit", 20, 1, cfg.Feed.MaxPaginationLimit)
		offset := intQueryParam(c, "offset", 0, 0, 1<<30)

		page, err := container.EngagementUsecase.Reads(c.Request().Context(), userID, mode, limit, offset)
		if err != nil {
			return handleError(c, err, "user_reads")
		}
		return c.JSON(http.StatusOK, page)
	}
}

func fieldStatsHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := pathUserID(c)
		if err != nil {
			return badRequest(c, "user_id must be an integer")
		}

		metric := c.QueryParam("metric")
		if metric != engagement_usecase.MetricDwell {
			metric = engagement_usecase.MetricReads
		}
		mode := timewindow.ParseMode(c.QueryParam("mode"), timewindow.ModeDay)
		days := intQueryParam(c, "days", 1, 1, 30)

		stats, err := container.EngagementUsecase.FieldStats(c.Request().Context(), userID, metric, mode, days)
		if err != nil {
			return handleError(c, err, "field_stats")
		}
		return c.JSON(http.StatusOK, stats)
	}
}

// hourlyActivityMode accepts only the two modes this chart supports;
// anything else, including "day", falls back to a trailing window.
func hourlyActivityMode(raw string) timewindow.Mode {
	if raw == string(timewindow.ModeWeek) {
		return timewindow.ModeWeek
	}
	return timewindow.ModeRolling
}

func hourlyActivityHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := pathUserID(c)
		if err != nil {
			return badRequest(c, "user_id must be an integer")
		}

		mode := hourlyActivityMode(c.QueryParam("mode"))
		days := intQueryParam(c, "days", 7, 1, 365)

		activity, err := container.EngagementUsecase.HourlyActivity(c.Request().Context(), userID, mode, days)
		if err != nil {
			return handleError(c, err, "hourly_activity")
		}
		return c.JSON(http.StatusOK, activity)
	}
}

func usageHourlyHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := pathUserID(c)
		if err != nil {
			return badRequest(c, "user_id must be an integer")
		}

		mode := timewindow.ParseMode(c.QueryParam("mode"), timewindow.ModeDay)
		days := intQueryParam(c, "days", 7, 1, 365)

		usage, err := container.EngagementUsecase.SessionHourUsage(c.Request().Context(), userID, mode, days)
		if err != nil {
			return handleError(c, err, "usage_hourly")
		}
		return c.JSON(http.StatusOK, usage)
	}
}
