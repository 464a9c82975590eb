package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"clinic-booking-api/internal/model"
)

// Memory is a map-backed Store for tests and local development. Like the
// Postgres schema, it rejects overlapping appointments for the same doctor
// with ErrOverlap, so both implementations uphold the same invariant.
type Memory struct {
	mu           sync.RWMutex
	doctors      map[string]model.Doctor
	appointments map[string]model.Appointment
}

func NewMemory() *Memory {
	return &Memory{
		doctors:      make(map[string]model.Doctor),
		appointments: make(map[string]model.Appointment),
	}
}

func (m *Memory) CreateDoctor(_ context.Context, d *model.Doctor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	d.CreatedAt, d.UpdatedAt = now, now
	m.doctors[d.ID] = *d
	return nil
}

func (m *Memory) DoctorByID(_ context.Context, id string) (*model.Doctor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.doctors[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (m *Memory) ListDoctors(_ context.Context) ([]model.Doctor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Doctor, 0, len(m.doctors))
	for _, d := range m.doctors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) CreateAppointment(_ context.Context, a *model.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.overlapsLocked(a) {
		return ErrOverlap
	}
	now := time.Now().UTC()
	a.CreatedAt, a.UpdatedAt = now, now
	m.appointments[a.ID] = *a
	return nil
}

func (m *Memory) AppointmentByID(_ context.Context, id string) (*model.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (m *Memory) AppointmentsByDoctor(_ context.Context, doctorID string, from, to time.Time) ([]model.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Appointment
	for _, a := range m.appointments {
		if a.DoctorID != doctorID {
			continue
		}
		if a.Start.Before(from) || !a.Start.Before(to) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (m *Memory) ListAppointments(_ context.Context) ([]model.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Appointment, 0, len(m.appointments))
	for _, a := range m.appointments {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (m *Memory) UpdateAppointment(_ context.Context, a *model.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, ok := m.appointments[a.ID]
	if !ok {
		return ErrNotFound
	}
	if m.overlapsLocked(a) {
		return ErrOverlap
	}
	a.CreatedAt = prev.CreatedAt
	a.UpdatedAt = time.Now().UTC()
	m.appointments[a.ID] = *a
	return nil
}

func (m *Memory) DeleteAppointment(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.appointments[id]; !ok {
		return false, nil
	}
	delete(m.appointments, id)
	return true, nil
}

// overlapsLocked mirrors the Postgres exclusion constraint: half-open
// ranges, same doctor, skipping the record itself.
func (m *Memory) overlapsLocked(a *model.Appointment) bool {
	end := a.End()
	for _, b := range m.appointments {
		if b.DoctorID != a.DoctorID || b.ID == a.ID {
			continue
		}
		if a.Start.Before(b.End()) && b.Start.Before(end) {
			return true
		}
	}
	return false
}
