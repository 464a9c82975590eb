package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"clinic-booking-api/internal/model"
	"clinic-booking-api/internal/store"
)

// Service orchestrates the scheduling operations: working-hours validation,
// conflict detection and slot listing over a Store. It holds no state of its
// own beyond the per-doctor locks that serialize the booking path.
type Service struct {
	store       store.Store
	clock       Clock
	granularity time.Duration
	doctors     lockMap
}

func NewService(st store.Store, clock Clock, granularity time.Duration) *Service {
	return &Service{
		store:       st,
		clock:       clock,
		granularity: granularity,
		doctors:     lockMap{locks: make(map[string]*sync.Mutex)},
	}
}

// lockMap hands out one mutex per doctor. Booking holds the doctor's mutex
// across fetch → validate → persist, so two concurrent requests for the
// same doctor cannot both pass the conflict check. The store's exclusion
// constraint is the second line of defense when several processes share one
// database.
type lockMap struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *lockMap) lock(key string) func() {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()
	m.Lock()
	return m.Unlock
}

// DoctorRequest carries the fields needed to register a doctor. Working
// hours are local wall-clock "HH:MM" strings.
type DoctorRequest struct {
	Name           string
	Specialization string
	WorkStart      string
	WorkEnd        string
}

// AppointmentRequest carries the full set of appointment fields. Updates
// are whole replacements, not patches, and re-validate everything as if
// newly created.
type AppointmentRequest struct {
	DoctorID    string
	Start       time.Time
	Duration    int
	Type        string
	PatientName string
	Notes       string
}

func (r *AppointmentRequest) validate() error {
	switch {
	case r.DoctorID == "":
		return &ValidationError{Field: "doctorId", Reason: "required"}
	case r.Start.IsZero():
		return &ValidationError{Field: "date", Reason: "required"}
	case r.Duration <= 0:
		return &ValidationError{Field: "duration", Reason: "must be a positive number of minutes"}
	case r.Type == "":
		return &ValidationError{Field: "appointmentType", Reason: "required"}
	case r.PatientName == "":
		return &ValidationError{Field: "patientName", Reason: "required"}
	}
	return nil
}

func (s *Service) CreateDoctor(ctx context.Context, req DoctorRequest) (*model.Doctor, error) {
	if req.Name == "" {
		return nil, &ValidationError{Field: "name", Reason: "required"}
	}
	if req.Specialization == "" {
		return nil, &ValidationError{Field: "specialization", Reason: "required"}
	}
	start, err := model.ParseTimeOfDay(req.WorkStart)
	if err != nil {
		return nil, &ValidationError{Field: "workingHours.start", Reason: err.Error()}
	}
	end, err := model.ParseTimeOfDay(req.WorkEnd)
	if err != nil {
		return nil, &ValidationError{Field: "workingHours.end", Reason: err.Error()}
	}
	if !start.Before(end) {
		return nil, &ValidationError{Field: "workingHours", Reason: "start must be before end"}
	}

	d := &model.Doctor{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Specialization: req.Specialization,
		WorkingHours:   model.WorkingHours{Start: start, End: end},
	}
	if err := s.store.CreateDoctor(ctx, d); err != nil {
		return nil, fmt.Errorf("create doctor: %w", err)
	}
	return d, nil
}

func (s *Service) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	doctors, err := s.store.ListDoctors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

func (s *Service) CreateAppointment(ctx context.Context, req AppointmentRequest) (*model.Appointment, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	unlock := s.doctors.lock(req.DoctorID)
	defer unlock()

	if err := s.checkBookable(ctx, req, ""); err != nil {
		return nil, err
	}

	apt := &model.Appointment{
		ID:          uuid.New().String(),
		DoctorID:    req.DoctorID,
		Start:       req.Start.UTC(),
		Duration:    req.Duration,
		Type:        req.Type,
		PatientName: req.PatientName,
		Notes:       req.Notes,
	}
	if err := s.store.CreateAppointment(ctx, apt); err != nil {
		// store-level overlap guard caught a race across processes
		if errors.Is(err, store.ErrOverlap) {
			return nil, &ConflictError{Candidate: Span(apt)}
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return apt, nil
}

func (s *Service) UpdateAppointment(ctx context.Context, id string, req AppointmentRequest) (*model.Appointment, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "required"}
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	prev, err := s.store.AppointmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("fetch appointment: %w", err)
	}

	unlock := s.doctors.lock(req.DoctorID)
	defer unlock()

	// exclude the appointment's own prior version from conflict detection
	if err := s.checkBookable(ctx, req, id); err != nil {
		return nil, err
	}

	apt := &model.Appointment{
		ID:          id,
		DoctorID:    req.DoctorID,
		Start:       req.Start.UTC(),
		Duration:    req.Duration,
		Type:        req.Type,
		PatientName: req.PatientName,
		Notes:       req.Notes,
		CreatedAt:   prev.CreatedAt,
	}
	if err := s.store.UpdateAppointment(ctx, apt); err != nil {
		switch {
		case errors.Is(err, store.ErrOverlap):
			return nil, &ConflictError{Candidate: Span(apt)}
		case errors.Is(err, store.ErrNotFound):
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return apt, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id string) error {
	if id == "" {
		return &ValidationError{Field: "id", Reason: "required"}
	}
	removed, err := s.store.DeleteAppointment(ctx, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if !removed {
		return ErrAppointmentNotFound
	}
	return nil
}

func (s *Service) GetAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	apt, err := s.store.AppointmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("fetch appointment: %w", err)
	}
	return apt, nil
}

func (s *Service) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	apts, err := s.store.ListAppointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return apts, nil
}

// ListAvailableSlots returns the doctor's free slots for a local calendar
// date, formatted as local wall-clock strings in chronological order.
func (s *Service) ListAvailableSlots(ctx context.Context, doctorID, date string) ([]string, error) {
	if doctorID == "" {
		return nil, &ValidationError{Field: "doctorId", Reason: "required"}
	}
	if date == "" {
		return nil, &ValidationError{Field: "date", Reason: "required"}
	}
	day, err := s.clock.ParseDate(date)
	if err != nil {
		return nil, err
	}

	doctor, err := s.store.DoctorByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("fetch doctor: %w", err)
	}

	dayRange := s.clock.DayRange(day)
	booked, err := s.store.AppointmentsByDoctor(ctx, doctorID, dayRange.Start, dayRange.End)
	if err != nil {
		return nil, fmt.Errorf("fetch appointments: %w", err)
	}

	working := s.clock.WorkingInterval(doctor.WorkingHours, day)
	free := AvailableSlots(working, booked, s.granularity)
	out := make([]string, len(free))
	for i, slot := range free {
		out[i] = s.clock.FormatLocal(slot.Start)
	}
	return out, nil
}

// checkBookable runs the two invariants for a candidate booking: the
// interval must fit the doctor's working hours for its local day, and it
// must not overlap any other appointment of that doctor. Callers hold the
// doctor's lock.
func (s *Service) checkBookable(ctx context.Context, req AppointmentRequest, excludeID string) error {
	doctor, err := s.store.DoctorByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrDoctorNotFound
		}
		return fmt.Errorf("fetch doctor: %w", err)
	}

	start := req.Start.UTC()
	candidate := Interval{Start: start, End: start.Add(time.Duration(req.Duration) * time.Minute)}

	day := s.clock.Day(start)
	working := s.clock.WorkingInterval(doctor.WorkingHours, day)
	if !working.Contains(candidate) {
		return &OutsideHoursError{Candidate: candidate, Working: working}
	}

	// Every persisted appointment fits inside working hours, so anything
	// that can overlap the candidate starts on the same local day.
	dayRange := s.clock.DayRange(day)
	existing, err := s.store.AppointmentsByDoctor(ctx, req.DoctorID, dayRange.Start, dayRange.End)
	if err != nil {
		return fmt.Errorf("fetch appointments: %w", err)
	}
	if conflict := findConflict(candidate, existing, excludeID); conflict != nil {
		return conflict
	}
	return nil
}
