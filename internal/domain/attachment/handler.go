package attachment

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
	g.GET("/attachments", h.List)
	g.GET("/attachments/:id", h.Get)
	g.POST("/attachments", h.Create)
	g.PUT("/attachments/:id", h.Update)
	g.DELETE("/attachments/:id", h.Delete)
}

type payload struct {
	RecordType          *Kind            `json:"record_type"`
	RecordID            *int64           `json:"record_id"`
	Description         *string          `json:"description"`
	DocumentFileName    *string          `json:"document_file_name"`
	DocumentContentType *string          `json:"document_content_type"`
	DocumentFileSize    *int64           `json:"document_file_size"`
	DocumentUpdatedAt   *render.DateTime `json:"document_updated_at"`
}

type envelope struct {
	Attachment payload `json:"attachment"`
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, render.Validationf("invalid attachment id")
	}
	return id, nil
}

func (h *Handler) List(c echo.Context) error {
	var recordType *Kind
	var recordID *int64
	if c.QueryParams().Has("record_type") {
		k := Kind(c.QueryParam("record_type"))
		recordType = &k
	}
	if c.QueryParams().Has("record_id") {
		id, err := strconv.ParseInt(c.QueryParam("record_id"), 10, 64)
		if err != nil {
			return render.BadRequest(c, "invalid record_id")
		}
		recordID = &id
	}

	pg := pagination.FromContext(c)
	items, err := h.svc.List(c.Request().Context(), recordType, recordID, pg.Limit, pg.Offset)
	if err != nil {
		return render.Err(c, err)
	}
	out := make([]*Response, 0, len(items))
	for _, a := range items {
		out = append(out, a.Render())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"attachments": out})
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
	return c.JSON(http.StatusOK, map[string]interface{}{"attachment": a.Render()})
}

func (h *Handler) Create(c echo.Context) error {
	var req envelope
	if err := c.Bind(&req); err != nil {
		return render.BadRequest(c, "invalid JSON payload")
	}

	params := CreateParams{
		RecordType:          req.Attachment.RecordType,
		RecordID:            req.Attachment.RecordID,
		Description:         req.Attachment.Description,
		DocumentFileName:    req.Attachment.DocumentFileName,
		DocumentContentType: req.Attachment.DocumentContentType,
		DocumentFileSize:    req.Attachment.DocumentFileSize,
	}
	if req.Attachment.DocumentUpdatedAt != nil {
		params.DocumentUpdatedAt = &req.Attachment.DocumentUpdatedAt.Time
	}

	a, err := h.svc.Create(c.Request().Context(), params)
	if err != nil {
		return render.Err(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"attachment": a.Render()})
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
		Description:         req.Attachment.Description,
		DocumentFileName:    req.Attachment.DocumentFileName,
		DocumentContentType: req.Attachment.DocumentContentType,
		DocumentFileSize:    req.Attachment.DocumentFileSize,
	}
	if req.Attachment.DocumentUpdatedAt != nil {
		params.DocumentUpdatedAt = &req.Attachment.DocumentUpdatedAt.Time
	}

	a, err := h.svc.Update(c.Request().Context(), id, params)
	if err != nil {
		return render.Err(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"attachment": a.Render()})
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
