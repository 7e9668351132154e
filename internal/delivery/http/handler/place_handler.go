package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/places-directory/internal/delivery/http/middleware"
	"github.com/places-directory/internal/pkg/errors"
	"github.com/places-directory/internal/pkg/utils"
	"github.com/places-directory/internal/pkg/validator"
	"github.com/places-directory/internal/usecase"
	"github.com/places-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlaceHandler serves the place list, detail and like endpoints.
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
	logger  *zap.Logger
}

func NewPlaceHandler(placeUC *usecase.PlaceUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
		logger:  logger,
	}
}

// List godoc
// @Summary List active places
// @Description Filters combine with AND. Tag parameters take comma-separated keys; unknown keys are ignored.
// @Tags Places
// @Produce json
// @Param category query int false "Category id"
// @Param category_name query string false "Category name substring, case-insensitive"
// @Param expectations query string false "Comma-separated expectation keys"
// @Param sorting_tags query string false "Comma-separated sorting/region keys"
// @Param search query string false "Free-text search over name, description, address and category name"
// @Param ordering query string false "name, created_at, category or popularity; prefix with - for descending"
// @Success 200 {array} dto.PlaceListItem
// @Failure 400 {object} utils.ErrorResponse
// @Router /places/ [get]
func (h *PlaceHandler) List(c *fiber.Ctx) error {
	var query dto.PlaceListQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	items, err := h.placeUC.List(c.Context(), query, middleware.Lang(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(items)
}

// Get godoc
// @Summary Get the full detail view of a place
// @Tags Places
// @Produce json
// @Param id path int true "Place id"
// @Param device_id query string false "Device id for the user_interaction block"
// @Success 200 {object} dto.PlaceDetail
// @Failure 404 {object} utils.ErrorResponse
// @Router /places/{id}/ [get]
func (h *PlaceHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidPlaceID)
	}

	detail, err := h.placeUC.GetDetail(c.Context(), id, middleware.Lang(c), c.Query("device_id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(detail)
}

// Like godoc
// @Summary Toggle a device's like on a place
// @Tags Places
// @Accept json
// @Produce json
// @Param id path int true "Place id"
// @Param request body dto.LikeRequest true "Device identifier"
// @Success 200 {object} dto.LikeResponse
// @Failure 400 {object} map[string][]string
// @Failure 404 {object} utils.ErrorResponse
// @Router /places/{id}/like/ [post]
func (h *PlaceHandler) Like(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidPlaceID)
	}

	var req dto.LikeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendFieldErrors(c, map[string][]string{
			"device_id": {"This field is required."},
		})
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendFieldErrors(c, validator.FieldErrors(err))
	}

	resp, err := h.placeUC.ToggleLike(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(resp)
}
