package newsdb

import (
	"context"
	"testing"
	"time"

	"newscleanse/domain"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func TestRepository_FetchMoodDeltas(t *testing.T) {
	t.Run("skips missing and non-numeric deltas", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewRepositoryWithDB(mock)

		since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		good := "6"
		negative := "-3.5"
		junk := "angry"
		mock.ExpectQuery("SELECT meta->>'delta', ts.*FROM user_events").
			WithArgs(int64(7), []string{domain.EventTypeMood, domain.EventTypeStressDelta}, since).
			WillReturnRows(pgxmock.NewRows([]string{"delta", "ts"}).
				AddRow(&good, since.Add(time.Hour)).
				AddRow(nil, since.Add(2*time.Hour)).
				AddRow(&junk, since.Add(3*time.Hour)).
				AddRow(&negative, since.Add(4*time.Hour)))

		deltas, err := repo.FetchMoodDeltas(context.Background(), 7, since)

		require.NoError(t, err)
		require.Len(t, deltas, 2)
		require.Equal(t, 6.0, deltas[0].Delta)
		require.Equal(t, -3.5, deltas[1].Delta)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_AppendEvents(t *testing.T) {
	t.Run("inserts the batch in one transaction", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewRepositoryWithDB(mock)

		events := []domain.EngagementEvent{
			{UserID: 7, EventType: "scroll", ArticleID: "eco123", Timestamp: time.Now().UTC()},
			{UserID: 7, EventType: "share", Timestamp: time.Now().UTC()},
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO user_events").
			WithArgs(int64(7), "scroll", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectQuery("INSERT INTO user_events").
			WithArgs(int64(7), "share", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(2)))
		mock.ExpectCommit()

		inserted, err := repo.AppendEvents(context.Background(), events)

		require.NoError(t, err)
		require.Equal(t, 2, inserted)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewRepositoryWithDB(mock)

		inserted, err := repo.AppendEvents(context.Background(), nil)

		require.NoError(t, err)
		require.Zero(t, inserted)
	})
}

func TestRepository_ProbeSentimentSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepositoryWithDB(mock)

	mock.ExpectQuery("SELECT column_name.*FROM information_schema.columns").
		WillReturnRows(pgxmock.NewRows([]string{"column_name"}).
			AddRow("original_article_id").
			AddRow("sentiment_classification").
			AddRow("confidence").
			AddRow("summary_html"))

	schema, err := repo.ProbeSentimentSchema(context.Background())

	require.NoError(t, err)
	require.True(t, schema.HasConfidence)
	require.True(t, schema.HasSummaryHTML)
	require.False(t, schema.HasHighlightHTML)
	require.False(t, schema.HasEvidenceSentences)
	require.NoError(t, mock.ExpectationsWereMet())
}
