package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/places-directory/internal/delivery/http/middleware"
	"github.com/places-directory/internal/pkg/utils"
	"github.com/places-directory/internal/pkg/validator"
	"github.com/places-directory/internal/usecase"
	"github.com/places-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

// WheelSpinHandler serves the random-selection endpoint.
type WheelSpinHandler struct {
	wheelSpinUC *usecase.WheelSpinUseCase
	logger      *zap.Logger
}

func NewWheelSpinHandler(wheelSpinUC *usecase.WheelSpinUseCase, logger *zap.Logger) *WheelSpinHandler {
	return &WheelSpinHandler{
		wheelSpinUC: wheelSpinUC,
		logger:      logger,
	}
}

// Spin godoc
// @Summary Pick one random place matching the given filters
// @Description Every matching active place is equally likely. A miss yields a fixed 404 detail body.
// @Tags WheelSpin
// @Accept json
// @Produce json
// @Param request body dto.WheelSpinRequest true "Selection filters"
// @Success 200 {object} dto.PlaceDetail
// @Failure 400 {object} map[string][]string
// @Failure 404 {object} utils.DetailResponse
// @Router /wheel-spin/ [post]
func (h *WheelSpinHandler) Spin(c *fiber.Ctx) error {
	var req dto.WheelSpinRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendFieldErrors(c, map[string][]string{
			"non_field_errors": {"Invalid request body."},
		})
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendFieldErrors(c, validator.FieldErrors(err))
	}

	detail, err := h.wheelSpinUC.Spin(c.Context(), req, middleware.Lang(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(detail)
}
