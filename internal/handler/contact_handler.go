package handler

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/zititex/zititex-api/internal/dto"
	"github.com/zititex/zititex-api/internal/service"
	"github.com/zititex/zititex-api/internal/utils"
)

// ContactSuccessMessage is the localized confirmation returned to submitters.
const ContactSuccessMessage = "Mensaje enviado exitosamente. Te responderemos pronto."

// ContactHandler handles landing-page contact submissions.
type ContactHandler struct {
	service   service.ContactService
	validator *validator.Validate
	logger    zerolog.Logger
	debug     bool
}

// NewContactHandler constructs a contact handler.
func NewContactHandler(service service.ContactService, validate *validator.Validate, logger zerolog.Logger, debug bool) *ContactHandler {
	return &ContactHandler{
		service:   service,
		validator: validate,
		logger:    logger.With().Str("component", "contact_handler").Logger(),
		debug:     debug,
	}
}

// Register wires contact routes.
func (h *ContactHandler) Register(router fiber.Router) {
	router.Post("", h.submit)
}

func (h *ContactHandler) submit(c *fiber.Ctx) error {
	var payload dto.ContactRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	payload.IPAddress = c.IP()
	payload.UserAgent = c.Get("User-Agent")

	result, err := h.service.Submit(c.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailNotConfigured), errors.Is(err, service.ErrAdminEmailNotConfigured):
			h.logger.Error().Err(err).Msg("contact endpoint misconfigured")
			return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
		default:
			h.logger.Error().Err(err).Msg("failed to process contact submission")
			message := "error processing contact form"
			if h.debug {
				message = fmt.Sprintf("%s: %v", message, err)
			}
			return utils.SendError(c, fiber.StatusInternalServerError, message)
		}
	}

	return utils.SendSuccess(c, ContactSuccessMessage, result)
}
