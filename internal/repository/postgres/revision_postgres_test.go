package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solidguide/internal/model"
	"solidguide/internal/repository"
)

var revisionCols = []string{
	"id", "title", "content_sha256", "source_path", "html_path",
	"size_bytes", "section_count", "snippet_count", "warning_count", "published_at",
}

func sampleRevision(now time.Time) *model.Revision {
	return &model.Revision{
		ID:            "rev-uuid",
		Title:         "SOLID Principles in Go",
		ContentSHA256: "abc123",
		SourcePath:    "revisions/rev-uuid/guide.md",
		HTMLPath:      "revisions/rev-uuid/guide.html",
		SizeBytes:     2048,
		SectionCount:  6,
		SnippetCount:  5,
		WarningCount:  0,
		PublishedAt:   now,
	}
}

func revisionRow(rev *model.Revision) *sqlmock.Rows {
	return sqlmock.NewRows(revisionCols).AddRow(
		rev.ID, rev.Title, rev.ContentSHA256, rev.SourcePath, rev.HTMLPath,
		rev.SizeBytes, rev.SectionCount, rev.SnippetCount, rev.WarningCount, rev.PublishedAt,
	)
}

func TestRevisionPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRevisionPostgres(db)
	ctx := context.Background()
	rev := sampleRevision(time.Now().UTC())

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO guide_revisions").
			WithArgs(rev.ID, rev.Title, rev.ContentSHA256, rev.SourcePath, rev.HTMLPath,
				rev.SizeBytes, rev.SectionCount, rev.SnippetCount, rev.WarningCount, rev.PublishedAt).
			WillReturnRows(revisionRow(rev))

		got, err := repo.Create(ctx, rev)

		assert.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, rev.ID, got.ID)
		assert.Equal(t, rev.ContentSHA256, got.ContentSHA256)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate content hash", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO guide_revisions").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "guide_revisions_content_sha256_key"})

		got, err := repo.Create(ctx, rev)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, repository.ErrDuplicate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRevisionPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRevisionPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rev := sampleRevision(time.Now())
		mock.ExpectQuery("SELECT (.+) FROM guide_revisions WHERE id = ?").
			WithArgs("rev-uuid").
			WillReturnRows(revisionRow(rev))

		got, err := repo.FindByID(ctx, "rev-uuid")

		assert.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "rev-uuid", got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM guide_revisions WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.FindByID(ctx, "missing")

		assert.Error(t, err)
		assert.True(t, IsNoRowsError(err))
		assert.Nil(t, got)
	})
}

func TestRevisionPostgres_FindLatest(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRevisionPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rev := sampleRevision(time.Now())
		mock.ExpectQuery("SELECT (.+) FROM guide_revisions ORDER BY published_at DESC").
			WillReturnRows(revisionRow(rev))

		got, err := repo.FindLatest(ctx)

		assert.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, rev.ID, got.ID)
	})

	t.Run("empty registry", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM guide_revisions ORDER BY published_at DESC").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.FindLatest(ctx)

		assert.True(t, IsNoRowsError(err))
		assert.Nil(t, got)
	})
}

func TestRevisionPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRevisionPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM guide_revisions`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		rev := sampleRevision(time.Now())
		rows := revisionRow(rev).AddRow(
			"rev-2", rev.Title, "def456", "revisions/rev-2/guide.md", "revisions/rev-2/guide.html",
			rev.SizeBytes, rev.SectionCount, rev.SnippetCount, 1, rev.PublishedAt,
		)
		mock.ExpectQuery("SELECT (.+) FROM guide_revisions ORDER BY published_at DESC").
			WithArgs(10, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, 2, res.Total)
		assert.Len(t, res.Items, 2)
		assert.Equal(t, "rev-2", res.Items[1].ID)
	})

	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM guide_revisions`).
			WillReturnError(sql.ErrConnDone)

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestRevisionPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRevisionPostgres(db)
	ctx := context.Background()

	t.Run("deletes row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM guide_revisions WHERE id = ?").
			WithArgs("rev-uuid").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "rev-uuid"))
	})

	t.Run("missing row is not an error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM guide_revisions WHERE id = ?").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Delete(ctx, "missing"))
	})
}
