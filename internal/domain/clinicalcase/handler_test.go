package clinicalcase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo, *Service, *mockStore) {
	svc, store, _ := newTestService()
	return NewHandler(svc), echo.New(), svc, store
}

func TestGetCaseHandler_Success(t *testing.T) {
	h, e, svc, store := newTestHandler()
	p := store.addPatient("Jane Doe")
	item, _ := svc.Create(context.Background(), CreateParams{
		PatientID: ptrInt64(p.ID), Anatomy: ptrString("knee"),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.FormatInt(item.ID, 10))

	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var body map[string]map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["case"]["anatomy"] != "knee" {
		t.Errorf("expected anatomy, got %v", body["case"]["anatomy"])
	}
	if body["case"]["patientId"] != float64(p.ID) {
		t.Errorf("expected camelCase patientId, got %v", body["case"]["patientId"])
	}
}

func TestGetCaseHandler_NotFound(t *testing.T) {
	h, e, _, _ := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	var body map[string]map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"]["message"] != "Not Found" {
		t.Errorf("expected Not Found, got %q", body["error"]["message"])
	}
}

func TestCreateCaseHandler_Success(t *testing.T) {
	h, e, _, store := newTestHandler()
	p := store.addPatient("Jane Doe")

	body := fmt.Sprintf(`{"case":{"patient_id":%d,"anatomy":"knee","side":"left"}}`, p.ID)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestCreateCaseHandler_MissingPatient(t *testing.T) {
	h, e, _, store := newTestHandler()
	body := `{"case":{"anatomy":"knee"}}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(strings.ToLower(rec.Body.String()), "patient") {
		t.Errorf("expected message naming the patient, got %s", rec.Body.String())
	}
	if len(store.cases) != 0 {
		t.Errorf("expected no stored case, got %d", len(store.cases))
	}
}

func TestDeleteCaseHandler_ThenGet404(t *testing.T) {
	h, e, svc, store := newTestHandler()
	p := store.addPatient("Jane Doe")
	item, _ := svc.Create(context.Background(), CreateParams{PatientID: ptrInt64(p.ID)})
	id := strconv.FormatInt(item.ID, 10)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["message"] != "Deleted" {
		t.Errorf("expected Deleted message, got %q", body["message"])
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	h.Get(c)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
}
