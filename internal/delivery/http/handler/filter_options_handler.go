package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/places-directory/internal/delivery/http/middleware"
	"github.com/places-directory/internal/pkg/utils"
	"github.com/places-directory/internal/usecase"
	"go.uber.org/zap"
)

// FilterOptionsHandler serves the aggregated filter vocabulary.
type FilterOptionsHandler struct {
	referenceUC *usecase.ReferenceUseCase
	logger      *zap.Logger
}

func NewFilterOptionsHandler(referenceUC *usecase.ReferenceUseCase, logger *zap.Logger) *FilterOptionsHandler {
	return &FilterOptionsHandler{
		referenceUC: referenceUC,
		logger:      logger,
	}
}

// Get godoc
// @Summary List every selectable filter value, localized
// @Tags Filters
// @Produce json
// @Param lang query string false "Language code override"
// @Success 200 {object} dto.FilterOptionsResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /filter-options/ [get]
func (h *FilterOptionsHandler) Get(c *fiber.Ctx) error {
	options, err := h.referenceUC.FilterOptions(c.Context(), middleware.Lang(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(options)
}
