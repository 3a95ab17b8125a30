package adl

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/careassess/careassess/internal/platform/assess"
	"github.com/careassess/careassess/internal/platform/auth"
	"github.com/careassess/careassess/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// Read endpoints – therapist, assistant
	readGroup := api.Group("", auth.RequireRole("therapist", "assistant"))
	readGroup.GET("/assessments/adl", h.ListAssessments)
	readGroup.GET("/assessments/adl/:id", h.GetAssessment)
	readGroup.GET("/assessments/adl/:id/form", h.GetForm)
	readGroup.GET("/assessments/adl/:id/export", h.Export)

	// Write endpoints – therapist only
	writeGroup := api.Group("", auth.RequireRole("therapist"))
	writeGroup.POST("/assessments/adl", h.CreateAssessment)
	writeGroup.PUT("/assessments/adl/:id/form", h.SubmitForm)
	writeGroup.POST("/assessments/adl/import", h.Import)
	writeGroup.DELETE("/assessments/adl/:id", h.DeleteAssessment)
}

type createRequest struct {
	ClientID uuid.UUID     `json:"client_id"`
	Context  assess.Record `json:"context"`
}

func (h *Handler) CreateAssessment(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.CreateAssessment(c.Request().Context(), req.ClientID, req.Context)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) GetAssessment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	a, err := h.svc.GetAssessment(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) GetForm(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	result, err := h.svc.GetForm(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) SubmitForm(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var form Form
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.SubmitForm(c.Request().Context(), id, &form)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Export(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	exported, err := h.svc.Export(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="adl-assessment-`+id.String()+`.json"`)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(exported))
}

func (h *Handler) Import(c echo.Context) error {
	clientID, err := uuid.Parse(c.QueryParam("client_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid client_id")
	}
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "read request body")
	}
	a, err := h.svc.Import(c.Request().Context(), clientID, string(body))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) DeleteAssessment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteAssessment(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListAssessments(c echo.Context) error {
	pg := pagination.FromContext(c)

	if clientID := c.QueryParam("client_id"); clientID != "" {
		cid, err := uuid.Parse(clientID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid client_id")
		}
		assessments, total, err := h.svc.ListAssessmentsByClient(c.Request().Context(), cid, pg.Limit, pg.Offset)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, pagination.NewResponse(assessments, total, pg.Limit, pg.Offset))
	}

	assessments, total, err := h.svc.ListAssessments(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(assessments, total, pg.Limit, pg.Offset))
}
