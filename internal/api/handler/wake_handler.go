package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ghost-console/ghost/internal/api/middleware"
	"github.com/ghost-console/ghost/internal/core/ports"
)

type WakeHandler struct {
	machines ports.MachineService
}

func NewWakeHandler(machines ports.MachineService) *WakeHandler {
	return &WakeHandler{machines: machines}
}

// Wake handles POST /api/wake. It dispatches a magic packet to the target
// machine after a permission check. A success response only acknowledges
// that the packet was sent.
//
// @Summary      Wake a machine
// @Tags         wake
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      wakeRequest  true  "Target machine"
// @Success      200   {object}  wakeResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/wake [post]
func (h *WakeHandler) Wake(c echo.Context) error {
	var req wakeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	caller := middleware.UserFrom(c)
	msg, err := h.machines.Wake(c.Request().Context(), caller, req.Name, req.MAC)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, wakeResponse{Status: "success", Message: msg})
}
