package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/healer/healer-api/internal/domain/patient"
	"github.com/healer/healer-api/internal/platform/render"
)

// -- Mock Store --

// mockStore backs both the appointment repository and the patient gate,
// so tests can flip a patient's status and watch its appointments
// disappear from reads.
type mockStore struct {
	appointments map[int64]*Appointment
	patients     map[int64]*patient.Patient
	nextID       int64
}

func newMockStore() *mockStore {
	return &mockStore{
		appointments: make(map[int64]*Appointment),
		patients:     make(map[int64]*patient.Patient),
	}
}

func (m *mockStore) addPatient(name string) *patient.Patient {
	m.nextID++
	p := &patient.Patient{
		ID:     m.nextID,
		Name:   name,
		Birth:  time.Date(1970, 4, 2, 0, 0, 0, 0, time.UTC),
		Gender: "female",
		Status: patient.StatusActive,
	}
	m.patients[p.ID] = p
	return p
}

func (m *mockStore) FindActive(_ context.Context, id int64) (*patient.Patient, error) {
	p, ok := m.patients[id]
	if !ok || !p.Active() {
		return nil, render.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockStore) visible(a *Appointment) *Appointment {
	owner, ok := m.patients[a.PatientID]
	if !ok || !owner.Active() {
		return nil
	}
	cp := *a
	ocp := *owner
	cp.Patient = &ocp
	return &cp
}

func (m *mockStore) Create(_ context.Context, a *Appointment) error {
	m.nextID++
	a.ID = m.nextID
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	cp := *a
	cp.Patient = nil
	m.appointments[a.ID] = &cp
	return nil
}

func (m *mockStore) Get(_ context.Context, id int64) (*Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, render.ErrNotFound
	}
	v := m.visible(a)
	if v == nil {
		return nil, render.ErrNotFound
	}
	return v, nil
}

func (m *mockStore) List(_ context.Context, f Filter) ([]*Appointment, error) {
	var items []*Appointment
	for _, a := range m.appointments {
		v := m.visible(a)
		if v == nil {
			continue
		}
		if f.Location != nil && (v.Location == nil || *v.Location != *f.Location) {
			continue
		}
		if f.TripID != nil && (v.TripID == nil || *v.TripID != *f.TripID) {
			continue
		}
		items = append(items, v)
	}
	return items, nil
}

func (m *mockStore) Update(_ context.Context, a *Appointment) error {
	existing, ok := m.appointments[a.ID]
	if !ok || m.visible(existing) == nil {
		return render.ErrNotFound
	}
	cp := *a
	cp.PatientID = existing.PatientID
	cp.Patient = nil
	m.appointments[a.ID] = &cp
	return nil
}

func (m *mockStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.appointments[id]; !ok {
		return render.ErrNotFound
	}
	delete(m.appointments, id)
	return nil
}

func newTestService() (*Service, *mockStore) {
	store := newMockStore()
	return NewService(store, store), store
}

func ptrInt64(v int64) *int64    { return &v }
func ptrInt(v int) *int          { return &v }
func ptrString(v string) *string { return &v }

func ptrTime(v time.Time) *time.Time { return &v }

// -- Service Tests --

func TestCreateAppointment_Success(t *testing.T) {
	svc, store := newTestService()
	p := store.addPatient("Jane Doe")

	a, err := svc.Create(context.Background(), CreateParams{
		PatientID: ptrInt64(p.ID),
		TripID:    ptrInt64(2),
		Location:  ptrString("room 1"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID == 0 {
		t.Error("expected ID to be set")
	}
	if a.Patient == nil || a.Patient.Name != "Jane Doe" {
		t.Errorf("expected owning patient attached, got %+v", a.Patient)
	}
	if len(store.appointments) != 1 {
		t.Errorf("expected 1 stored appointment, got %d", len(store.appointments))
	}
}

func TestCreateAppointment_MissingPatientID(t *testing.T) {
	svc, store := newTestService()
	_, err := svc.Create(context.Background(), CreateParams{Location: ptrString("room 1")})
	if !render.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(store.appointments) != 0 {
		t.Errorf("expected no stored appointment, got %d", len(store.appointments))
	}
}

func TestCreateAppointment_UnknownPatient(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Create(context.Background(), CreateParams{PatientID: ptrInt64(99)})
	if !errors.Is(err, render.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateAppointment_DeletedPatient(t *testing.T) {
	svc, store := newTestService()
	p := store.addPatient("Jane Doe")
	p.Status = patient.StatusDeleted

	_, err := svc.Create(context.Background(), CreateParams{PatientID: ptrInt64(p.ID)})
	if !errors.Is(err, render.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetAppointment_DeletedOwnerHidden(t *testing.T) {
	svc, store := newTestService()
	p := store.addPatient("Jane Doe")
	a, _ := svc.Create(context.Background(), CreateParams{PatientID: ptrInt64(p.ID)})

	if _, err := svc.Get(context.Background(), a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.Status = patient.StatusDeleted
	if _, err := svc.Get(context.Background(), a.ID); !errors.Is(err, render.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after owner delete, got %v", err)
	}
	if _, ok := store.appointments[a.ID]; !ok {
		t.Error("expected the row to survive the owner's delete")
	}
}

func TestListAppointments_Filters(t *testing.T) {
	svc, store := newTestService()
	p := store.addPatient("Jane Doe")

	svc.Create(context.Background(), CreateParams{
		PatientID: ptrInt64(p.ID), TripID: ptrInt64(2), Location: ptrString("room 1"),
	})
	svc.Create(context.Background(), CreateParams{
		PatientID: ptrInt64(p.ID), TripID: ptrInt64(2), Location: ptrString("room 2"),
	})
	svc.Create(context.Background(), CreateParams{
		PatientID: ptrInt64(p.ID), TripID: ptrInt64(3), Location: ptrString("room 1"),
	})

	all, err := svc.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 appointments, got %d", len(all))
	}

	byLocation, _ := svc.List(context.Background(), Filter{Location: ptrString("room 1")})
	if len(byLocation) != 2 {
		t.Errorf("expected 2 for room 1, got %d", len(byLocation))
	}

	byTrip, _ := svc.List(context.Background(), Filter{TripID: ptrInt64(2)})
	if len(byTrip) != 2 {
		t.Errorf("expected 2 for trip 2, got %d", len(byTrip))
	}

	both, _ := svc.List(context.Background(), Filter{
		Location: ptrString("room 1"), TripID: ptrInt64(2),
	})
	if len(both) != 1 {
		t.Errorf("expected 1 for room 1 and trip 2, got %d", len(both))
	}
}

func TestListAppointments_ExcludesDeletedOwners(t *testing.T) {
	svc, store := newTestService()
	kept := store.addPatient("Jane Doe")
	gone := store.addPatient("John Roe")

	svc.Create(context.Background(), CreateParams{PatientID: ptrInt64(kept.ID)})
	svc.Create(context.Background(), CreateParams{PatientID: ptrInt64(gone.ID)})
	gone.Status = patient.StatusDeleted

	items, err := svc.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 visible appointment, got %d", len(items))
	}
	if items[0].PatientID != kept.ID {
		t.Errorf("expected the kept patient's appointment, got patient %d", items[0].PatientID)
	}
}

func TestUpdateAppointment_Fields(t *testing.T) {
	svc, store := newTestService()
	p := store.addPatient("Jane Doe")
	a, _ := svc.Create(context.Background(), CreateParams{
		PatientID: ptrInt64(p.ID), Location: ptrString("room 1"),
	})

	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	got, err := svc.Update(context.Background(), a.ID, UpdateParams{
		StartTime:    ptrTime(start),
		StartOrdinal: ptrInt(1),
		Location:     ptrString("room 9"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Location == nil || *got.Location != "room 9" {
		t.Errorf("expected updated location, got %v", got.Location)
	}
	if got.StartTime == nil || !got.StartTime.Equal(start) {
		t.Errorf("expected updated start time, got %v", got.StartTime)
	}
	if got.PatientID != p.ID {
		t.Errorf("expected patient preserved, got %d", got.PatientID)
	}
}

func TestUpdateAppointment_DeletedOwner(t *testing.T) {
	svc, store := newTestService()
	p := store.addPatient("Jane Doe")
	a, _ := svc.Create(context.Background(), CreateParams{PatientID: ptrInt64(p.ID)})
	p.Status = patient.StatusDeleted

	_, err := svc.Update(context.Background(), a.ID, UpdateParams{Location: ptrString("room 9")})
	if !errors.Is(err, render.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteAppointment_Hard(t *testing.T) {
	svc, store := newTestService()
	p := store.addPatient("Jane Doe")
	a, _ := svc.Create(context.Background(), CreateParams{PatientID: ptrInt64(p.ID)})

	if err := svc.Delete(context.Background(), a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.appointments[a.ID]; ok {
		t.Error("expected the row to be gone")
	}
}

func TestDeleteAppointment_NotFound(t *testing.T) {
	svc, _ := newTestService()
	if err := svc.Delete(context.Background(), 99); !errors.Is(err, render.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
