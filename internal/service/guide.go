package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"solidguide/internal/config"
	"solidguide/internal/guide"
	"solidguide/internal/model"
	"solidguide/internal/repository"
	"solidguide/internal/storage"
)

var (
	ErrReaderNil         = errors.New("reader is nil")
	ErrIDRequired        = errors.New("id is required")
	ErrNotFound          = errors.New("revision not found")
	ErrGuideInvalid      = errors.New("guide verification failed")
	ErrDuplicateRevision = errors.New("revision with identical content already published")
	ErrSourceTooLarge    = errors.New("guide source exceeds size limit")
)

// maxSourceBytes caps accepted guide sources. Matches the HTTP body limit.
const maxSourceBytes = 4 << 20

// sourceURLExpiry bounds the lifetime of pre-signed source download links.
const sourceURLExpiry = 15 * time.Minute

// RevisionListResult is the service-level DTO for paginated revisions.
type RevisionListResult struct {
	Items []model.Revision `json:"data"`
	Total int              `json:"total"`
}

// GuideService defines the use cases for checking and publishing the guide.
type GuideService interface {
	// Check verifies a candidate guide source without persisting anything.
	Check(ctx context.Context, r io.Reader) (*guide.Report, error)

	// Publish verifies the source, rejects it with ErrGuideInvalid when the
	// report carries errors, renders HTML, uploads both artifacts to object
	// storage, and records the revision. Storage uploads are rolled back if a
	// later step fails. The report is returned alongside the revision so
	// callers can surface warnings.
	Publish(ctx context.Context, r io.Reader, size int64) (*model.Revision, *guide.Report, error)

	// GuideHTML returns the rendered HTML of the latest published revision.
	// When nothing has been published yet it falls back to rendering the
	// working-tree source and returns a nil revision.
	GuideHTML(ctx context.Context) ([]byte, *model.Revision, error)

	// List returns revisions using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*RevisionListResult, error)

	// Get returns a single revision by its ID.
	Get(ctx context.Context, id string) (*model.Revision, error)

	// Delete removes a revision's artifacts from storage, then its record.
	Delete(ctx context.Context, id string) error

	// SourceURL returns a pre-signed download link for a revision's Markdown source.
	SourceURL(ctx context.Context, id string) (string, error)
}

// guideService is a concrete implementation of GuideService.
type guideService struct {
	store      storage.Storage
	repo       repository.RevisionRepository
	sourcePath string
}

// NewGuideService constructs a new GuideService. cfg locates the working-tree
// source used for unpublished previews.
func NewGuideService(store storage.Storage, repo repository.RevisionRepository, cfg config.GuideConfig) GuideService {
	return &guideService{store: store, repo: repo, sourcePath: cfg.SourcePath}
}

func (s *guideService) Check(ctx context.Context, r io.Reader) (*guide.Report, error) {
	src, err := readSource(r)
	if err != nil {
		return nil, err
	}
	return guide.Verify(src), nil
}

func (s *guideService) Publish(ctx context.Context, r io.Reader, size int64) (*model.Revision, *guide.Report, error) {
	if size > maxSourceBytes {
		return nil, nil, ErrSourceTooLarge
	}
	src, err := readSource(r)
	if err != nil {
		return nil, nil, err
	}

	report := guide.Verify(src)
	if report.HasErrors() {
		return nil, report, ErrGuideInvalid
	}

	html, err := guide.Render(src)
	if err != nil {
		return nil, report, fmt.Errorf("render html: %w", err)
	}

	sum := sha256.Sum256(src)
	hash := hex.EncodeToString(sum[:])
	id := uuid.New().String()
	sourceKey := filepath.ToSlash(filepath.Join("revisions", id, "guide.md"))
	htmlKey := filepath.ToSlash(filepath.Join("revisions", id, "guide.html"))

	srcInfo, err := s.store.Put(ctx, sourceKey, bytes.NewReader(src), storage.PutOptions{
		Size:        int64(len(src)),
		ContentType: "text/markdown; charset=utf-8",
		Metadata:    map[string]string{"content-sha256": hash},
	})
	if err != nil {
		return nil, report, fmt.Errorf("upload source: %w", err)
	}

	if _, err := s.store.Put(ctx, htmlKey, bytes.NewReader(html), storage.PutOptions{
		Size:        int64(len(html)),
		ContentType: "text/html; charset=utf-8",
	}); err != nil {
		if delErr := s.store.Delete(ctx, sourceKey); delErr != nil {
			return nil, report, fmt.Errorf("upload html failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, report, fmt.Errorf("upload html: %w", err)
	}

	rev := &model.Revision{
		ID:            id,
		Title:         report.Outline.Title,
		ContentSHA256: hash,
		SourcePath:    srcInfo.Key,
		HTMLPath:      htmlKey,
		SizeBytes:     int64(len(src)),
		SectionCount:  len(report.Outline.Sections),
		SnippetCount:  len(report.Outline.Snippets),
		WarningCount:  len(report.Warnings()),
		PublishedAt:   time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, rev)
	if err != nil {
		// Rollback: remove both uploaded artifacts.
		for _, key := range []string{htmlKey, sourceKey} {
			if delErr := s.store.Delete(ctx, key); delErr != nil {
				return nil, report, fmt.Errorf("db save failed: %v; rollback delete %s failed: %v", err, key, delErr)
			}
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, report, ErrDuplicateRevision
		}
		return nil, report, fmt.Errorf("db save failed: %w", err)
	}
	return stored, report, nil
}

func (s *guideService) GuideHTML(ctx context.Context) ([]byte, *model.Revision, error) {
	rev, err := s.repo.FindLatest(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s.previewHTML()
		}
		return nil, nil, err
	}

	rc, _, err := s.store.Get(ctx, rev.HTMLPath)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch html: %w", err)
	}
	defer rc.Close()

	html, err := io.ReadAll(rc)
	if err != nil {
		return nil, nil, fmt.Errorf("read html: %w", err)
	}
	return html, rev, nil
}

// previewHTML renders the working-tree source for the unpublished case.
func (s *guideService) previewHTML() ([]byte, *model.Revision, error) {
	src, err := os.ReadFile(s.sourcePath)
	if err != nil {
		return nil, nil, fmt.Errorf("read guide source: %w", err)
	}
	html, err := guide.Render(src)
	if err != nil {
		return nil, nil, fmt.Errorf("render guide source: %w", err)
	}
	return html, nil, nil
}

// List returns paginated revisions without exposing repository types.
func (s *guideService) List(ctx context.Context, limit, offset int) (*RevisionListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &RevisionListResult{Items: res.Items, Total: res.Total}, nil
}

// Get returns a revision by ID.
func (s *guideService) Get(ctx context.Context, id string) (*model.Revision, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	rev, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rev, nil
}

// Delete removes a revision's artifacts from storage, then deletes its record.
func (s *guideService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	rev, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	// Delete from storage first; if this fails, keep the row so the artifacts
	// remain reachable.
	if err := s.store.Delete(ctx, rev.HTMLPath); err != nil {
		return fmt.Errorf("delete html: %w", err)
	}
	if err := s.store.Delete(ctx, rev.SourcePath); err != nil {
		return fmt.Errorf("delete source: %w", err)
	}
	return s.repo.Delete(ctx, id)
}

// SourceURL returns a pre-signed GET link for the revision's Markdown source.
func (s *guideService) SourceURL(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", ErrIDRequired
	}
	rev, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	u, err := s.store.PresignGet(ctx, rev.SourcePath, sourceURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign source: %w", err)
	}
	return u, nil
}

// readSource drains the reader with the size cap enforced.
func readSource(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	src, err := io.ReadAll(io.LimitReader(r, maxSourceBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	if int64(len(src)) > maxSourceBytes {
		return nil, ErrSourceTooLarge
	}
	return src, nil
}
