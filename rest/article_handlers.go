package rest

import (
	"net/http"
	"strconv"

	"newscleanse/config"
	"newscleanse/di"
	"newscleanse/port/article_port"

	"github.com/labstack/echo/v4"
)

func registerArticleRoutes(g *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	g.GET("/news", listArticlesHandler(container, cfg))
	g.GET("/news/:article_id", articleDetailHandler(container))
	g.GET("/news/:article_id/complete", articleCompleteHandler(container))
	g.GET("/news/:article_id/bundle", articleBundleHandler(container))
	g.GET("/news/:article_id/stats", articleStatsHandler(container))
}

func listArticlesHandler(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		q := article_port.ArticleListQuery{
			Limit:    intQueryParam(c, "limit", 20, 1, cfg.Feed.MaxPaginationLimit),
			Offset:   intQueryParam(c, "offset", 0, 0, 1<<30),
			Category: c.QueryParam("category"),
			Press:    c.QueryParam("press"),
			Query:    c.QueryParam("q"),
		}

		items, total, err := container.ArticleUsecase.List(c.Request().Context(), q)
		if err != nil {
			return handleError(c, err, "list_articles")
		}
		return c.JSON(http.StatusOK, ArticleListResponse{
			Items:  items,
			Limit:  q.Limit,
			Offset: q.Offset,
			Total:  total,
		})
	}
}

func articleDetailHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		detail, err := container.ArticleUsecase.GetDetail(c.Request().Context(), c.Param("article_id"))
		if err != nil {
			return handleError(c, err, "article_detail")
		}
		return c.JSON(http.StatusOK, detail)
	}
}

func articleCompleteHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		similarLimit := intQueryParam(c, "similar_limit", 5, 1, 12)
		relatedLimit := intQueryParam(c, "related_limit", 6, 1, 20)

		result, err := container.ArticleUsecase.Complete(c.Request().Context(), c.Param("article_id"), similarLimit, relatedLimit)
		if err != nil {
			return handleError(c, err, "article_complete")
		}
		return c.JSON(http.StatusOK, result)
	}
}

func articleBundleHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := strconv.ParseInt(c.QueryParam("user_id"), 10, 64)
		if err != nil {
			return badRequest(c, "user_id must be an integer")
		}

		bundle, err := container.ArticleUsecase.Bundle(c.Request().Context(), c.Param("article_id"), userID)
		if err != nil {
			return handleError(c, err, "article_bundle")
		}
		return c.JSON(http.StatusOK, bundle)
	}
}

func articleStatsHandler(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := container.ArticleUsecase.Stats(c.Request().Context(), c.Param("article_id"))
		if err != nil {
			return handleError(c, err, "article_stats")
		}
		return c.JSON(http.StatusOK, stats)
	}
}
