package store

import (
	"context"
	"errors"
	"time"

	"clinic-booking-api/internal/model"
)

var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrOverlap means the write was rejected by the store's own overlap
	// guard (the exclusion constraint in Postgres).
	ErrOverlap = errors.New("overlapping appointment")
)

// Store is the persistence contract consumed by the scheduling service.
type Store interface {
	CreateDoctor(ctx context.Context, d *model.Doctor) error
	DoctorByID(ctx context.Context, id string) (*model.Doctor, error)
	ListDoctors(ctx context.Context) ([]model.Doctor, error)

	CreateAppointment(ctx context.Context, a *model.Appointment) error
	AppointmentByID(ctx context.Context, id string) (*model.Appointment, error)
	// AppointmentsByDoctor returns the doctor's appointments starting in
	// [from, to), ordered by start time.
	AppointmentsByDoctor(ctx context.Context, doctorID string, from, to time.Time) ([]model.Appointment, error)
	ListAppointments(ctx context.Context) ([]model.Appointment, error)
	// UpdateAppointment replaces the record wholesale.
	UpdateAppointment(ctx context.Context, a *model.Appointment) error
	// DeleteAppointment reports whether a record was removed.
	DeleteAppointment(ctx context.Context, id string) (bool, error)
}
