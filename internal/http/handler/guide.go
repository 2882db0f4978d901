package handler

import (
	"context"
	"database/sql"
	"errors"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"solidguide/internal/guide"
	"solidguide/internal/model"
	"solidguide/internal/service"
)

// publishResponse pairs the stored revision with its verification report.
type publishResponse struct {
	Revision *model.Revision `json:"revision"`
	Report   *guide.Report   `json:"report"`
}

// formFile opens the multipart upload named "file"; a non-nil error response
// means the request was already answered.
func formFile(c *fiber.Ctx) (multipart.File, *multipart.FileHeader, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, nil, writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
	}
	return f, fh, nil
}

// ServeGuide serves the rendered guide document.
// @Summary Rendered guide page
// @Description HTML of the latest published revision, or a working-tree preview when nothing is published.
// @Tags guide
// @Produce html
// @Success 200 {string} string "HTML document"
// @Router /guide [get]
func ServeGuide(svc service.GuideService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		html, rev, err := svc.GuideHTML(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if rev != nil {
			c.Set("X-Guide-Revision", rev.ID)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(html)
	}
}

// CheckGuide verifies an uploaded guide source without publishing it.
// @Summary Verify a guide document
// @Tags guide
// @Accept mpfd
// @Produce json
// @Param file formData file true "Markdown source"
// @Success 200 {object} guide.Report
// @Failure 400 {object} errorPayload
// @Router /checks [post]
func CheckGuide(svc service.GuideService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, _, errResp := formFile(c)
		if errResp != nil {
			return errResp
		}
		defer f.Close()

		report, err := svc.Check(c.UserContext(), f)
		if err != nil {
			if errors.Is(err, service.ErrSourceTooLarge) {
				return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "guide source exceeds the size limit")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(report)
	}
}

// PublishRevision verifies and publishes an uploaded guide source.
// @Summary Publish a guide revision
// @Tags revisions
// @Accept mpfd
// @Produce json
// @Param file formData file true "Markdown source"
// @Success 201 {object} publishResponse
// @Failure 409 {object} errorPayload "identical content already published"
// @Failure 422 {object} verifyFailedPayload "verification failed"
// @Router /revisions [post]
func PublishRevision(svc service.GuideService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, fh, errResp := formFile(c)
		if errResp != nil {
			return errResp
		}
		defer f.Close()

		rev, report, err := svc.Publish(c.UserContext(), f, fh.Size)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrGuideInvalid):
				return writeVerifyFailed(c, report)
			case errors.Is(err, service.ErrDuplicateRevision):
				return writeError(c, fiber.StatusConflict, "REVISION_EXISTS", "identical guide content is already published")
			case errors.Is(err, service.ErrSourceTooLarge):
				return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "guide source exceeds the size limit")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(publishResponse{Revision: rev, Report: report})
	}
}

// ListRevisions lists published revisions.
// @Summary List revisions
// @Tags revisions
// @Produce json
// @Param limit query int false "page size" default(10)
// @Param offset query int false "page offset" default(0)
// @Success 200 {object} service.RevisionListResult
// @Router /revisions [get]
func ListRevisions(svc service.GuideService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetRevision returns one revision's metadata.
// @Summary Get a revision
// @Tags revisions
// @Produce json
// @Param id path string true "revision id"
// @Success 200 {object} model.Revision
// @Failure 404 {object} errorPayload
// @Router /revisions/{id} [get]
func GetRevision(svc service.GuideService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rev, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "revision not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(rev)
	}
}

// GetSourceURL returns a pre-signed download link for a revision's Markdown source.
// @Summary Presigned source download
// @Tags revisions
// @Produce json
// @Param id path string true "revision id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errorPayload
// @Router /revisions/{id}/source [get]
func GetSourceURL(svc service.GuideService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		u, err := svc.SourceURL(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "revision not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"url": u})
	}
}

// DeleteRevision removes a revision and its stored artifacts.
// @Summary Delete a revision
// @Tags revisions
// @Param id path string true "revision id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /revisions/{id} [delete]
func DeleteRevision(svc service.GuideService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "revision not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// HealthCheck reports readiness by pinging the revision registry.
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a trivial liveness endpoint.
// @Summary Liveness probe
// @Tags ops
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
