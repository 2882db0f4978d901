package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"solidguide/internal/model"
	"solidguide/internal/repository"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique constraint errors.
const pgUniqueViolation = "23505"

// RevisionPostgres is the PostgreSQL implementation of
// repository.RevisionRepository, on database/sql with parameterized queries.
type RevisionPostgres struct {
	db *sql.DB
}

// NewRevisionPostgres creates a new RevisionPostgres repository.
func NewRevisionPostgres(db *sql.DB) *RevisionPostgres {
	return &RevisionPostgres{db: db}
}

var _ repository.RevisionRepository = (*RevisionPostgres)(nil)

const revisionColumns = `id, title, content_sha256, source_path, html_path,
		size_bytes, section_count, snippet_count, warning_count, published_at`

// Create inserts a new revision row and returns the stored record.
func (r *RevisionPostgres) Create(ctx context.Context, rev *model.Revision) (*model.Revision, error) {
	const q = `
		INSERT INTO guide_revisions
			(id, title, content_sha256, source_path, html_path,
			 size_bytes, section_count, snippet_count, warning_count, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + revisionColumns
	row := r.db.QueryRowContext(ctx, q,
		rev.ID,
		rev.Title,
		rev.ContentSHA256,
		rev.SourcePath,
		rev.HTMLPath,
		rev.SizeBytes,
		rev.SectionCount,
		rev.SnippetCount,
		rev.WarningCount,
		rev.PublishedAt,
	)
	out, err := scanRevision(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("revision %s: %w", rev.ContentSHA256, repository.ErrDuplicate)
		}
		return nil, err
	}
	return out, nil
}

// FindByID fetches a single revision by its ID.
func (r *RevisionPostgres) FindByID(ctx context.Context, id string) (*model.Revision, error) {
	q := `SELECT ` + revisionColumns + ` FROM guide_revisions WHERE id = $1`
	return scanRevision(r.db.QueryRowContext(ctx, q, id))
}

// FindLatest fetches the most recently published revision.
func (r *RevisionPostgres) FindLatest(ctx context.Context) (*model.Revision, error) {
	q := `SELECT ` + revisionColumns + `
		FROM guide_revisions
		ORDER BY published_at DESC, id DESC
		LIMIT 1`
	return scanRevision(r.db.QueryRowContext(ctx, q))
}

// List returns revisions using LIMIT/OFFSET pagination plus a total count.
func (r *RevisionPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Revision], error) {
	const qCount = `SELECT COUNT(*) FROM guide_revisions`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	qList := `SELECT ` + revisionColumns + `
		FROM guide_revisions
		ORDER BY published_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Revision, 0)
	for rows.Next() {
		var rev model.Revision
		if err := rows.Scan(
			&rev.ID,
			&rev.Title,
			&rev.ContentSHA256,
			&rev.SourcePath,
			&rev.HTMLPath,
			&rev.SizeBytes,
			&rev.SectionCount,
			&rev.SnippetCount,
			&rev.WarningCount,
			&rev.PublishedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Revision]{Items: items, Total: total}, nil
}

// Delete removes a revision by ID. Missing rows are not an error.
func (r *RevisionPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM guide_revisions WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// IsNoRowsError reports whether err is the no-rows sentinel from database/sql.
func IsNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func scanRevision(row *sql.Row) (*model.Revision, error) {
	var rev model.Revision
	if err := row.Scan(
		&rev.ID,
		&rev.Title,
		&rev.ContentSHA256,
		&rev.SourcePath,
		&rev.HTMLPath,
		&rev.SizeBytes,
		&rev.SectionCount,
		&rev.SnippetCount,
		&rev.WarningCount,
		&rev.PublishedAt,
	); err != nil {
		return nil, err
	}
	return &rev, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
