package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ghost-console/ghost/internal/api/middleware"
	"github.com/ghost-console/ghost/internal/core/ports"
)

type DashboardHandler struct {
	machines ports.MachineService
	users    ports.UserService
}

func NewDashboardHandler(machines ports.MachineService, users ports.UserService) *DashboardHandler {
	return &DashboardHandler{machines: machines, users: users}
}

// dashboardData feeds the index template. AllMachines and Users are only
// populated for admins, driving the management panel.
type dashboardData struct {
	Username    string
	IsAdmin     bool
	Machines    []machineResponse
	AllMachines []machineResponse
	Users       []userResponse
}

// Index handles GET /, the console page. Anonymous requests get the
// login view; authenticated ones get their policy-filtered machine list,
// plus the full machine and user lists when the caller is an admin.
func (h *DashboardHandler) Index(c echo.Context) error {
	user := middleware.UserFrom(c)
	if user == nil {
		return c.Render(http.StatusOK, "login.html", nil)
	}

	ctx := c.Request().Context()
	visible, err := h.machines.ListVisible(ctx, user)
	if err != nil {
		return err
	}

	data := dashboardData{
		Username: user.Username,
		IsAdmin:  user.IsAdmin(),
	}
	for _, m := range visible {
		data.Machines = append(data.Machines, machineResponse{Name: m.Name, MAC: m.MAC})
	}

	if user.IsAdmin() {
		all, err := h.machines.List(ctx)
		if err != nil {
			return err
		}
		for _, m := range all {
			data.AllMachines = append(data.AllMachines, machineResponse{Name: m.Name, MAC: m.MAC})
		}

		accounts, err := h.users.List(ctx)
		if err != nil {
			return err
		}
		for _, u := range accounts {
			data.Users = append(data.Users, userResponse{
				Username:    u.Username,
				Role:        u.Role,
				AllowedMACs: u.AllowedMACs,
			})
		}
	}

	return c.Render(http.StatusOK, "index.html", data)
}
