package team

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
	g.GET("/teams", h.List)
	g.GET("/teams/:id", h.Get)
	g.POST("/teams", h.Create)
	g.PUT("/teams/:id", h.Update)
	g.DELETE("/teams/:id", h.Delete)
}

type payload struct {
	Name *string `json:"name"`
}

type envelope struct {
	Team payload `json:"team"`
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, render.Validationf("invalid team id")
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
	for _, t := range items {
		out = append(out, t.Render())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"teams": out})
}

func (h *Handler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return render.Err(c, err)
	}
	t, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return render.Err(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"team": t.Render()})
}

func (h *Handler) Create(c echo.Context) error {
	var req envelope
	if err := c.Bind(&req); err != nil {
		return render.BadRequest(c, "invalid JSON payload")
	}

	t := &Team{}
	if req.Team.Name != nil {
		t.Name = *req.Team.Name
	}
	if err := h.svc.Create(c.Request().Context(), t); err != nil {
		return render.Err(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"team": t.Render()})
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

	t, err := h.svc.Update(c.Request().Context(), id, req.Team.Name)
	if err != nil {
		return render.Err(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"team": t.Render()})
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
