package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rdsimon13/sif-backend/internal/dto"
	"github.com/rdsimon13/sif-backend/internal/identity"
	"github.com/rdsimon13/sif-backend/internal/models"
	"github.com/rdsimon13/sif-backend/internal/services"
)

// SafetyHandler exposes the user-facing safety surface: submitting reports
// and managing blocks.
type SafetyHandler struct {
	reportService *services.ReportService
	blockService  *services.BlockService
}

func NewSafetyHandler(reportService *services.ReportService, blockService *services.BlockService) *SafetyHandler {
	return &SafetyHandler{reportService: reportService, blockService: blockService}
}

func (h *SafetyHandler) SubmitReport(c *fiber.Ctx) error {
	reporterID, err := identity.CallerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SubmitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	report, err := h.reportService.SubmitReport(reporterID, req.ContentID,
		models.ReportCategory(req.Category), req.Reason)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyReported) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrContentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

func (h *SafetyHandler) BlockUser(c *fiber.Ctx) error {
	blockerID, err := identity.CallerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.BlockUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.blockService.BlockUser(blockerID, req.BlockedID, models.BlockReason(req.Reason)); err != nil {
		if errors.Is(err, services.ErrSelfBlock) || errors.Is(err, services.ErrAlreadyBlocked) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrInvalidBlockReason) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to block user",
		})
	}

	return c.JSON(fiber.Map{"message": "User blocked successfully"})
}

func (h *SafetyHandler) UnblockUser(c *fiber.Ctx) error {
	blockerID, err := identity.CallerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	blockedID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	if err := h.blockService.UnblockUser(blockerID, blockedID); err != nil {
		if errors.Is(err, services.ErrBlockNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to unblock user",
		})
	}

	return c.JSON(fiber.Map{"message": "User unblocked successfully"})
}

func (h *SafetyHandler) BlockStatus(c *fiber.Ctx) error {
	blockerID, err := identity.CallerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	blockedID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	blocked, err := h.blockService.IsUserBlocked(blockerID, blockedID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to check block status",
		})
	}

	return c.JSON(fiber.Map{"blocked": blocked})
}

func (h *SafetyHandler) ListBlockedUsers(c *fiber.Ctx) error {
	actorID, err := identity.CallerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	details, err := h.blockService.GetBlockedUsersWithDetails(actorID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch blocked users",
		})
	}

	return c.JSON(fiber.Map{"blocked_users": details})
}

func (h *SafetyHandler) BlockingInfo(c *fiber.Ctx) error {
	actorID, err := identity.CallerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	info, err := h.blockService.GetUserBlockingInfo(actorID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch blocking info",
		})
	}

	return c.JSON(info)
}
