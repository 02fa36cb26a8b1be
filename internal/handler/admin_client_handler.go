package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/zititex/zititex-api/internal/dto"
	"github.com/zititex/zititex-api/internal/service"
	"github.com/zititex/zititex-api/internal/utils"
)

// AdminClientHandler exposes admin endpoints over stored leads.
type AdminClientHandler struct {
	service service.AdminClientService
	logger  zerolog.Logger
}

// NewAdminClientHandler constructs the handler.
func NewAdminClientHandler(service service.AdminClientService, logger zerolog.Logger) *AdminClientHandler {
	return &AdminClientHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_client_handler").Logger(),
	}
}

// Register attaches routes.
func (h *AdminClientHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Delete("/:id", h.remove)
}

func (h *AdminClientHandler) list(c *fiber.Ctx) error {
	page, err := parseQueryInt(c, "page")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page")
	}
	pageSize, err := parseQueryInt(c, "page_size")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page size")
	}

	req := dto.AdminClientListRequest{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}

	result, err := h.service.List(c.Context(), req)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list leads")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list leads")
	}

	return utils.SendSuccess(c, "leads retrieved", result)
}

func (h *AdminClientHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	client, err := h.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "lead not found")
		}
		h.logger.Error().Err(err).Uint("client_id", id).Msg("failed to fetch lead")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch lead")
	}

	return utils.SendSuccess(c, "lead retrieved", client)
}

func (h *AdminClientHandler) remove(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "lead not found")
		}
		h.logger.Error().Err(err).Uint("client_id", id).Msg("failed to delete lead")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete lead")
	}

	return utils.SendSuccess(c, "lead deleted", nil)
}
