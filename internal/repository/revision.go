package repository

import (
	"context"

	"solidguide/internal/model"
)

// RevisionRepository defines persistence for published guide revisions.
// Strictly SQL-backed storage operations; no business logic here.
type RevisionRepository interface {
	// Create inserts a new revision row and returns the stored record.
	// A content-hash collision yields an error wrapping ErrDuplicate.
	Create(ctx context.Context, rev *model.Revision) (*model.Revision, error)

	// FindByID returns a revision by its ID.
	FindByID(ctx context.Context, id string) (*model.Revision, error)

	// FindLatest returns the most recently published revision.
	FindLatest(ctx context.Context) (*model.Revision, error)

	// List returns a page of revisions (newest first) and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Revision], error)

	// Delete removes a revision by ID. Deleting a missing row is not an error.
	Delete(ctx context.Context, id string) error
}
