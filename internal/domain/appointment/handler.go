package appointment

import (
	"encoding/json"
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
	g.GET("/appointments", h.List)
	g.GET("/appointments/:id", h.Get)
	g.POST("/appointments", h.Create)
	g.PUT("/appointments/:id", h.Update)
	g.DELETE("/appointments/:id", h.Delete)
}

// payload accepts patient_id and a nested patient object so clients can
// send them, but updates never read either: the association and the
// owner's attributes stay as they were.
type payload struct {
	PatientID    *int64           `json:"patient_id"`
	TripID       *int64           `json:"trip_id"`
	StartTime    *render.DateTime `json:"start_time"`
	StartOrdinal *int             `json:"start_ordinal"`
	EndTime      *render.DateTime `json:"end_time"`
	Location     *string          `json:"location"`
	Patient      json.RawMessage  `json:"patient"`
}

type envelope struct {
	Appointment payload `json:"appointment"`
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, render.Validationf("invalid appointment id")
	}
	return id, nil
}

func (h *Handler) List(c echo.Context) error {
	var f Filter
	if c.QueryParams().Has("location") {
		loc := c.QueryParam("location")
		f.Location = &loc
	}
	if c.QueryParams().Has("trip_id") {
		tripID, err := strconv.ParseInt(c.QueryParam("trip_id"), 10, 64)
		if err != nil {
			return render.BadRequest(c, "invalid trip_id")
		}
		f.TripID = &tripID
	}

	items, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		return render.Err(c, err)
	}
	out := make([]*Response, 0, len(items))
	for _, a := range items {
		out = append(out, a.Render())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"appointments": out})
}

func (h *Handler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return render.Err(c, err)
	}
	a, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return render.Err(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"appointment": a.Render()})
}

func (h *Handler) Create(c echo.Context) error {
	var req envelope
	if err := c.Bind(&req); err != nil {
		return render.BadRequest(c, "invalid JSON payload")
	}

	params := CreateParams{
		PatientID:    req.Appointment.PatientID,
		TripID:       req.Appointment.TripID,
		StartOrdinal: req.Appointment.StartOrdinal,
		Location:     req.Appointment.Location,
	}
	if req.Appointment.StartTime != nil {
		params.StartTime = &req.Appointment.StartTime.Time
	}
	if req.Appointment.EndTime != nil {
		params.EndTime = &req.Appointment.EndTime.Time
	}

	a, err := h.svc.Create(c.Request().Context(), params)
	if err != nil {
		return render.Err(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"appointment": a.Render()})
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
		TripID:       req.Appointment.TripID,
		StartOrdinal: req.Appointment.StartOrdinal,
		Location:     req.Appointment.Location,
	}
	if req.Appointment.StartTime != nil {
		params.StartTime = &req.Appointment.StartTime.Time
	}
	if req.Appointment.EndTime != nil {
		params.EndTime = &req.Appointment.EndTime.Time
	}

	a, err := h.svc.Update(c.Request().Context(), id, params)
	if err != nil {
		return render.Err(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"appointment": a.Render()})
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
