package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"clinic-booking-api/internal/model"
)

const appointmentColumns = `id, doctor_id, start_time, duration_mins,
       appointment_type, patient_name, notes, created_at, updated_at`

func (s *Postgres) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO appointments (id, doctor_id, start_time, duration_mins,
		                           appointment_type, patient_name, notes)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.DoctorID, a.Start, a.Duration, a.Type, a.PatientName, a.Notes,
	)
	return mapErr(err)
}

func (s *Postgres) AppointmentByID(ctx context.Context, id string) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id,
	).Scan(&a.ID, &a.DoctorID, &a.Start, &a.Duration,
		&a.Type, &a.PatientName, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return a, nil
}

func (s *Postgres) AppointmentsByDoctor(ctx context.Context, doctorID string, from, to time.Time) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+appointmentColumns+`
		 FROM appointments
		 WHERE doctor_id = $1
		   AND start_time >= $2 AND start_time < $3
		 ORDER BY start_time`, doctorID, from, to,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	return scanAppointments(rows)
}

func (s *Postgres) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+appointmentColumns+` FROM appointments ORDER BY start_time`,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	return scanAppointments(rows)
}

func (s *Postgres) UpdateAppointment(ctx context.Context, a *model.Appointment) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE appointments
		 SET doctor_id=$1, start_time=$2, duration_mins=$3,
		     appointment_type=$4, patient_name=$5, notes=$6, updated_at=NOW()
		 WHERE id=$7`,
		a.DoctorID, a.Start, a.Duration, a.Type, a.PatientName, a.Notes, a.ID,
	)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) DeleteAppointment(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return false, mapErr(err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanAppointments(rows pgx.Rows) ([]model.Appointment, error) {
	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.DoctorID, &a.Start, &a.Duration,
			&a.Type, &a.PatientName, &a.Notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
