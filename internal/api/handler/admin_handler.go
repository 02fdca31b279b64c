package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ghost-console/ghost/internal/api/middleware"
	"github.com/ghost-console/ghost/internal/core/domain"
	"github.com/ghost-console/ghost/internal/core/ports"
)

// AdminHandler serves the admin panel API: user CRUD, permission edits
// and machine CRUD. All routes are mounted behind Auth + RequireAdmin.
type AdminHandler struct {
	users    ports.UserService
	machines ports.MachineService
}

func NewAdminHandler(users ports.UserService, machines ports.MachineService) *AdminHandler {
	return &AdminHandler{users: users, machines: machines}
}

// ListUsers handles GET /api/admin/users.
//
// @Summary      List all user accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	accounts, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]userResponse, 0, len(accounts))
	for _, u := range accounts {
		resp = append(resp, toUserResponse(&u))
	}
	return c.JSON(http.StatusOK, resp)
}

// AddUser handles POST /api/admin/users. New accounts always start with
// an empty allowed-MAC set.
//
// @Summary      Create a user account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addUserRequest  true  "New account"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/admin/users [post]
func (h *AdminHandler) AddUser(c echo.Context) error {
	var req addUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Add(c.Request().Context(), req.Username, req.Password, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// DeleteUser handles DELETE /api/admin/users/:username. Self-deletion is
// rejected to prevent lockout.
//
// @Summary      Delete a user account
// @Tags         admin
// @Security     BearerAuth
// @Param        username  path  string  true  "Username"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/users/{username} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	caller := middleware.UserFrom(c)
	if err := h.users.Delete(c.Request().Context(), caller, c.Param("username")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SetPermissions handles PUT /api/admin/users/:username/permissions. It
// replaces the target's whole allowed-MAC set.
//
// @Summary      Replace a user's machine permissions
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string                 true  "Username"
// @Param        body      body      setPermissionsRequest  true  "Allowed MACs"
// @Success      200       {object}  userResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/admin/users/{username}/permissions [put]
func (h *AdminHandler) SetPermissions(c echo.Context) error {
	var req setPermissionsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.SetPermissions(c.Request().Context(), c.Param("username"), req.AllowedMACs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// AddMachine handles POST /api/admin/pcs.
//
// @Summary      Register a machine
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addMachineRequest  true  "New machine"
// @Success      201   {object}  machineResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/admin/pcs [post]
func (h *AdminHandler) AddMachine(c echo.Context) error {
	var req addMachineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	machine, err := h.machines.Add(c.Request().Context(), req.Name, req.MAC)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, machineResponse{Name: machine.Name, MAC: machine.MAC})
}

// DeleteMachine handles DELETE /api/admin/pcs/:mac. The MAC is also
// pruned from every user's allowed set in the same update.
//
// @Summary      Delete a machine
// @Tags         admin
// @Security     BearerAuth
// @Param        mac  path  string  true  "MAC address"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/pcs/{mac} [delete]
func (h *AdminHandler) DeleteMachine(c echo.Context) error {
	if err := h.machines.Delete(c.Request().Context(), c.Param("mac")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toUserResponse(u *domain.User) userResponse {
	macs := u.AllowedMACs
	if macs == nil {
		macs = []string{}
	}
	return userResponse{Username: u.Username, Role: u.Role, AllowedMACs: macs}
}
