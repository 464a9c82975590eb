package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"clinic-booking-api/internal/model"
	"clinic-booking-api/internal/schedule"
)

type workingHoursPayload struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

type doctorRequest struct {
	Name           string              `json:"name" validate:"required"`
	Specialization string              `json:"specialization" validate:"required"`
	WorkingHours   workingHoursPayload `json:"workingHours" validate:"required"`
}

type doctorResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Specialization string              `json:"specialization"`
	WorkingHours   workingHoursPayload `json:"workingHours"`
}

func toDoctorResponse(d *model.Doctor) doctorResponse {
	return doctorResponse{
		ID:             d.ID,
		Name:           d.Name,
		Specialization: d.Specialization,
		WorkingHours: workingHoursPayload{
			Start: d.WorkingHours.Start.String(),
			End:   d.WorkingHours.End.String(),
		},
	}
}

func (h *Handler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req doctorRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	d, err := h.svc.CreateDoctor(r.Context(), schedule.DoctorRequest{
		Name:           req.Name,
		Specialization: req.Specialization,
		WorkStart:      req.WorkingHours.Start,
		WorkEnd:        req.WorkingHours.End,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toDoctorResponse(d))
}

func (h *Handler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.svc.ListDoctors(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]doctorResponse, len(doctors))
	for i := range doctors {
		out[i] = toDoctorResponse(&doctors[i])
	}
	h.writeJSON(w, http.StatusOK, out)
}

// ListAvailableSlots returns the doctor's free slots for ?date=YYYY-MM-DD
// as local wall-clock strings.
func (h *Handler) ListAvailableSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.svc.ListAvailableSlots(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("date"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	if slots == nil {
		slots = []string{}
	}
	h.writeJSON(w, http.StatusOK, slots)
}
