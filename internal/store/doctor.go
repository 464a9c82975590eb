package store

import (
	"context"

	"clinic-booking-api/internal/model"
)

func (s *Postgres) CreateDoctor(ctx context.Context, d *model.Doctor) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO doctors (id, name, specialization, work_start, work_end)
		 VALUES ($1,$2,$3,$4,$5)`,
		d.ID, d.Name, d.Specialization,
		d.WorkingHours.Start.String(), d.WorkingHours.End.String(),
	)
	return mapErr(err)
}

func (s *Postgres) DoctorByID(ctx context.Context, id string) (*model.Doctor, error) {
	d := &model.Doctor{}
	var workStart, workEnd string
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, specialization, work_start, work_end, created_at, updated_at
		 FROM doctors WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.Specialization, &workStart, &workEnd, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	if d.WorkingHours, err = parseHours(workStart, workEnd); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Postgres) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, specialization, work_start, work_end, created_at, updated_at
		 FROM doctors ORDER BY name`,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []model.Doctor
	for rows.Next() {
		var d model.Doctor
		var workStart, workEnd string
		if err := rows.Scan(
			&d.ID, &d.Name, &d.Specialization, &workStart, &workEnd, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if d.WorkingHours, err = parseHours(workStart, workEnd); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func parseHours(start, end string) (model.WorkingHours, error) {
	s, err := model.ParseTimeOfDay(start)
	if err != nil {
		return model.WorkingHours{}, err
	}
	e, err := model.ParseTimeOfDay(end)
	if err != nil {
		return model.WorkingHours{}, err
	}
	return model.WorkingHours{Start: s, End: e}, nil
}
