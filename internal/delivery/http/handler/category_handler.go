package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/places-directory/internal/delivery/http/middleware"
	"github.com/places-directory/internal/pkg/errors"
	"github.com/places-directory/internal/pkg/utils"
	"github.com/places-directory/internal/usecase"
	"go.uber.org/zap"
)

// CategoryHandler serves the category reference endpoints.
type CategoryHandler struct {
	referenceUC *usecase.ReferenceUseCase
	logger      *zap.Logger
}

func NewCategoryHandler(referenceUC *usecase.ReferenceUseCase, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		referenceUC: referenceUC,
		logger:      logger,
	}
}

// List godoc
// @Summary List place categories localized to the request language
// @Tags Categories
// @Produce json
// @Param lang query string false "Language code override"
// @Success 200 {array} dto.CategoryView
// @Failure 500 {object} utils.ErrorResponse
// @Router /categories/ [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.referenceUC.Categories(c.Context(), middleware.Lang(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(categories)
}

// Get godoc
// @Summary Get one category by id
// @Tags Categories
// @Produce json
// @Param id path int true "Category id"
// @Success 200 {object} dto.CategoryView
// @Failure 404 {object} utils.ErrorResponse
// @Router /categories/{id}/ [get]
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"id": "must be an integer",
		}))
	}

	category, err := h.referenceUC.GetCategory(c.Context(), id, middleware.Lang(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(category)
}
