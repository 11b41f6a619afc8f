package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studycare/studycare-client/internal/core/ports"
)

// TeacherHandler serves the teacher dashboard.
type TeacherHandler struct {
	dashboard ports.TeacherController
}

func NewTeacherHandler(dashboard ports.TeacherController) *TeacherHandler {
	return &TeacherHandler{dashboard: dashboard}
}

// ListClasses handles GET /teacher/classes.
func (h *TeacherHandler) ListClasses(c echo.Context) error {
	classes, err := h.dashboard.Load(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classesResponse{Classes: classes})
}

// CreateClass handles POST /teacher/classes.
func (h *TeacherHandler) CreateClass(c echo.Context) error {
	var req createClassRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	class, err := h.dashboard.CreateClass(c.Request().Context(), req.Name, req.Subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, class)
}

// GetClass handles GET /teacher/classes/:id. Sections that failed to load
// are listed under "warnings" while the rest of the roster is returned.
func (h *TeacherHandler) GetClass(c echo.Context) error {
	details, err := h.dashboard.SelectClass(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, details)
}
