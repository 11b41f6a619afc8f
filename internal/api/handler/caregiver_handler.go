package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studycare/studycare-client/internal/core/ports"
)

// CaregiverHandler serves the caregiver dashboard.
type CaregiverHandler struct {
	dashboard ports.CaregiverController
}

func NewCaregiverHandler(dashboard ports.CaregiverController) *CaregiverHandler {
	return &CaregiverHandler{dashboard: dashboard}
}

// ListChildren handles GET /caregiver/children.
func (h *CaregiverHandler) ListChildren(c echo.Context) error {
	children, err := h.dashboard.Load(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, childrenResponse{Children: children})
}

// LinkChild handles POST /caregiver/children.
func (h *CaregiverHandler) LinkChild(c echo.Context) error {
	var req linkChildRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	child, err := h.dashboard.LinkChild(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, child)
}

// Activity handles GET /caregiver/children/:id/activity.
func (h *CaregiverHandler) Activity(c echo.Context) error {
	activity, err := h.dashboard.SelectChild(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activity)
}

// UnlinkChild handles DELETE /caregiver/children/:id.
func (h *CaregiverHandler) UnlinkChild(c echo.Context) error {
	result, err := h.dashboard.UnlinkChild(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
