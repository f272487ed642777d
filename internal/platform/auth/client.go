package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/healer/healer-api/internal/platform/render"
)

const clientContextKey = "client_id"

// MissingClientMessage is the uniform failure text for requests without
// a client identity parameter.
const MissingClientMessage = "Missing client parameter"

// RequireClient rejects any request that does not identify the calling
// client, before all other validation. The client id is taken from the
// client_id query parameter or, for JSON bodies, the top-level
// client_id field. The body is restored so handlers can still bind it.
func RequireClient() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cid := c.QueryParam("client_id")
			if cid == "" {
				cid = clientFromBody(c)
			}
			if cid == "" {
				return render.Error(c, http.StatusBadRequest, MissingClientMessage)
			}
			c.Set(clientContextKey, cid)
			return next(c)
		}
	}
}

func clientFromBody(c echo.Context) string {
	req := c.Request()
	if req.Body == nil {
		return ""
	}
	if !strings.Contains(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return ""
	}
	body, err := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var probe struct {
		ClientID string `json:"client_id"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return ""
	}
	return probe.ClientID
}

// ClientID returns the caller identity set by RequireClient.
func ClientID(c echo.Context) string {
	cid, _ := c.Get(clientContextKey).(string)
	return cid
}
