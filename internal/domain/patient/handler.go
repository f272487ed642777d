package patient

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/healer/healer-api/internal/platform/render"
	"github.com/healer/healer-api/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/patients", h.List)
	g.GET("/patients/:id", h.Get)
	g.POST("/patients", h.Create)
	g.PUT("/patients/:id", h.Update)
	g.DELETE("/patients/:id", h.Delete)
}

type payload struct {
	Name   *string      `json:"name"`
	Birth  *render.Date `json:"birth"`
	Gender *string      `json:"gender"`
	Death  *render.Date `json:"death"`
}

type envelope struct {
	Patient payload `json:"patient"`
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, render.Validationf("invalid patient id")
	}
	return id, nil
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return render.Err(c, err)
	}
	out := make([]*Response, 0, len(items))
	for _, p := range items {
		out = append(out, p.Render())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"patients": out})
}

func (h *Handler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return render.Err(c, err)
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return render.Err(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"patient": p.Render()})
}

func (h *Handler) Create(c echo.Context) error {
	var req envelope
	if err := c.Bind(&req); err != nil {
		return render.BadRequest(c, "invalid JSON payload")
	}

	p := &Patient{}
	if req.Patient.Name != nil {
		p.Name = *req.Patient.Name
	}
	if req.Patient.Birth != nil {
		p.Birth = req.Patient.Birth.Time
	}
	if req.Patient.Gender != nil {
		p.Gender = *req.Patient.Gender
	}
	if req.Patient.Death != nil {
		death := req.Patient.Death.Time
		p.Death = &death
	}

	if err := h.svc.Create(c.Request().Context(), p); err != nil {
		return render.Err(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"patient": p.Render()})
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

	params := UpdateParams{
		Name:   req.Patient.Name,
		Gender: req.Patient.Gender,
	}
	if req.Patient.Birth != nil {
		params.Birth = &req.Patient.Birth.Time
	}
	if req.Patient.Death != nil {
		params.Death = &req.Patient.Death.Time
	}

	p, err := h.svc.Update(c.Request().Context(), id, params)
	if err != nil {
		return render.Err(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"patient": p.Render()})
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
