package clinicalcase

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/healer/healer-api/internal/platform/render"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/cases", h.List)
	g.GET("/cases/:id", h.Get)
	g.POST("/cases", h.Create)
	g.PUT("/cases/:id", h.Update)
	g.DELETE("/cases/:id", h.Delete)
}

type payload struct {
	PatientID *int64  `json:"patient_id"`
	Anatomy   *string `json:"anatomy"`
	Side      *string `json:"side"`
}

type envelope struct {
	Case payload `json:"case"`
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, render.Validationf("invalid case id")
	}
	return id, nil
}

func (h *Handler) List(c echo.Context) error {
	var patientID *int64
	if c.QueryParams().Has("patient_id") {
		id, err := strconv.ParseInt(c.QueryParam("patient_id"), 10, 64)
		if err != nil {
			return render.BadRequest(c, "invalid patient_id")
		}
		patientID = &id
	}

	items, err := h.svc.List(c.Request().Context(), patientID)
	if err != nil {
		return render.Err(c, err)
	}
	out := make([]*Response, 0, len(items))
	for _, item := range items {
		out = append(out, item.Render())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"cases": out})
}

func (h *Handler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return render.Err(c, err)
	}
	item, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return render.Err(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"case": item.Render()})
}

func (h *Handler) Create(c echo.Context) error {
	var req envelope
	if err := c.Bind(&req); err != nil {
		return render.BadRequest(c, "invalid JSON payload")
	}

	item, err := h.svc.Create(c.Request().Context(), CreateParams{
		PatientID: req.Case.PatientID,
		Anatomy:   req.Case.Anatomy,
		Side:      req.Case.Side,
	})
	if err != nil {
		return render.Err(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"case": item.Render()})
}

func (h *Handler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return render.Err(c, err)
	}
	var req envelope
	if err := c.Bind(&req); err != nil {
		return render.BadRequest(c, "invalid JSON payload")
	}

	item, err := h.svc.Update(c.Request().Context(), id, UpdateParams{
		Anatomy: req.Case.Anatomy,
		Side:    req.Case.Side,
	})
	if err != nil {
		return render.Err(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"case": item.Render()})
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return render.Err(c, err)
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return render.Err(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Deleted"})
}
