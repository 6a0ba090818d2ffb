package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rdsimon13/sif-backend/internal/dto"
	"github.com/rdsimon13/sif-backend/internal/identity"
	"github.com/rdsimon13/sif-backend/internal/models"
	"github.com/rdsimon13/sif-backend/internal/services"
)

// ModerationHandler exposes the moderator panel: the review queue, status
// listings, per-content stats, and report resolution.
type ModerationHandler struct {
	reportService     *services.ReportService
	moderationService *services.ModerationService
}

func NewModerationHandler(reportService *services.ReportService, moderationService *services.ModerationService) *ModerationHandler {
	return &ModerationHandler{
		reportService:     reportService,
		moderationService: moderationService,
	}
}

func (h *ModerationHandler) ListReports(c *fiber.Ctx) error {
	status := c.Query("status", string(models.StatusPending))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	if limit > 100 {
		limit = 100
	}

	reports, total, err := h.reportService.GetReportsByStatus(models.ReportStatus(status), limit, offset)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reports",
		})
	}

	return c.JSON(fiber.Map{
		"reports": reports,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// PendingQueue returns the oldest-first moderation queue.
func (h *ModerationHandler) PendingQueue(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	if limit > 100 {
		limit = 100
	}

	reports, total, err := h.reportService.GetPendingReports(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch pending reports",
		})
	}

	return c.JSON(fiber.Map{
		"reports": reports,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

func (h *ModerationHandler) ContentStats(c *fiber.Ctx) error {
	contentID, err := uuid.Parse(c.Query("content_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid content ID",
		})
	}

	stats, err := h.reportService.GetContentReportStats(contentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch report stats",
		})
	}

	return c.JSON(stats)
}

func (h *ModerationHandler) StartReview(c *fiber.Ctx) error {
	moderatorID, err := identity.CallerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	report, err := h.moderationService.StartReview(moderatorID, reportID)
	if err != nil {
		return h.reportError(c, err)
	}

	return c.JSON(report)
}

func (h *ModerationHandler) ResolveReport(c *fiber.Ctx) error {
	moderatorID, err := identity.CallerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	var req dto.ResolveReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	report, err := h.moderationService.ModerateReport(moderatorID, reportID,
		models.ModerationAction(req.Action), req.Notes)
	if err != nil {
		return h.reportError(c, err)
	}

	return c.JSON(report)
}

func (h *ModerationHandler) DismissReport(c *fiber.Ctx) error {
	moderatorID, err := identity.CallerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	var req dto.DismissReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	report, err := h.moderationService.DismissReport(moderatorID, reportID, req.Notes)
	if err != nil {
		return h.reportError(c, err)
	}

	return c.JSON(report)
}

func (h *ModerationHandler) reportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrReportNotFound),
		errors.Is(err, services.ErrContentNotFound),
		errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidAction), errors.Is(err, services.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Failed to update report",
	})
}
