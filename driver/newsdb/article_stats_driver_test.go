package newsdb

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func TestRepository_FetchArticleStats(t *testing.T) {
	t.Run("aggregates readers and dwell", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewRepositoryWithDB(mock)

		mock.ExpectQuery("SELECT COUNT\\(DISTINCT user_id\\), COALESCE\\(SUM\\(dwell_seconds\\), 0\\).*FROM article_reads").
			WithArgs("eco123").
			WillReturnRows(pgxmock.NewRows([]string{"count", "sum"}).AddRow(4, 600))

		stats, err := repo.FetchArticleStats(context.Background(), "eco123")

		require.NoError(t, err)
		require.Equal(t, 4, stats.Readers)
		require.Equal(t, 600, stats.TotalDwell)
		require.Equal(t, 150, stats.AvgDwell)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no readers means zero average", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewRepositoryWithDB(mock)

		mock.ExpectQuery("SELECT COUNT\\(DISTINCT user_id\\)").
			WithArgs("pol999").
			WillReturnRows(pgxmock.NewRows([]string{"count", "sum"}).AddRow(0, 0))

		stats, err := repo.FetchArticleStats(context.Background(), "pol999")

		require.NoError(t, err)
		require.Equal(t, 0, stats.Readers)
		require.Equal(t, 0, stats.AvgDwell)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
