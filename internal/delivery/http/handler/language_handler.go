package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/places-directory/internal/pkg/utils"
	"github.com/places-directory/internal/usecase"
	"go.uber.org/zap"
)

// LanguageHandler serves the language reference endpoints.
type LanguageHandler struct {
	referenceUC *usecase.ReferenceUseCase
	logger      *zap.Logger
}

func NewLanguageHandler(referenceUC *usecase.ReferenceUseCase, logger *zap.Logger) *LanguageHandler {
	return &LanguageHandler{
		referenceUC: referenceUC,
		logger:      logger,
	}
}

// List godoc
// @Summary List supported content languages
// @Tags Languages
// @Produce json
// @Success 200 {array} domain.Language
// @Failure 500 {object} utils.ErrorResponse
// @Router /languages/ [get]
func (h *LanguageHandler) List(c *fiber.Ctx) error {
	languages, err := h.referenceUC.Languages(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(languages)
}

// Get godoc
// @Summary Get one language by its two-letter code
// @Tags Languages
// @Produce json
// @Param code path string true "Language code"
// @Success 200 {object} domain.Language
// @Failure 404 {object} utils.ErrorResponse
// @Router /languages/{code}/ [get]
func (h *LanguageHandler) Get(c *fiber.Ctx) error {
	lang, err := h.referenceUC.GetLanguage(c.Context(), c.Params("code"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(lang)
}
