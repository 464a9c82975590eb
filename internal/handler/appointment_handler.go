package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"clinic-booking-api/internal/model"
	"clinic-booking-api/internal/schedule"
)

type appointmentRequest struct {
	DoctorID        string `json:"doctorId" validate:"required"`
	Date            string `json:"date" validate:"required"`
	Duration        int    `json:"duration" validate:"required,gt=0"`
	AppointmentType string `json:"appointmentType" validate:"required"`
	PatientName     string `json:"patientName" validate:"required"`
	Notes           string `json:"notes"`
}

type appointmentResponse struct {
	ID              string    `json:"id"`
	DoctorID        string    `json:"doctorId"`
	Date            time.Time `json:"date"`
	Duration        int       `json:"duration"`
	AppointmentType string    `json:"appointmentType"`
	PatientName     string    `json:"patientName"`
	Notes           string    `json:"notes,omitempty"`
}

func toAppointmentResponse(a *model.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:              a.ID,
		DoctorID:        a.DoctorID,
		Date:            a.Start,
		Duration:        a.Duration,
		AppointmentType: a.Type,
		PatientName:     a.PatientName,
		Notes:           a.Notes,
	}
}

func (r *appointmentRequest) toService() (schedule.AppointmentRequest, error) {
	start, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		return schedule.AppointmentRequest{}, &schedule.ValidationError{Field: "date", Reason: "want RFC3339 timestamp"}
	}
	return schedule.AppointmentRequest{
		DoctorID:    r.DoctorID,
		Start:       start,
		Duration:    r.Duration,
		Type:        r.AppointmentType,
		PatientName: r.PatientName,
		Notes:       r.Notes,
	}, nil
}

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req appointmentRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	sreq, err := req.toService()
	if err != nil {
		h.writeError(w, err)
		return
	}

	apt, err := h.svc.CreateAppointment(r.Context(), sreq)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toAppointmentResponse(apt))
}

func (h *Handler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	var req appointmentRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	sreq, err := req.toService()
	if err != nil {
		h.writeError(w, err)
		return
	}

	apt, err := h.svc.UpdateAppointment(r.Context(), chi.URLParam(r, "id"), sreq)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toAppointmentResponse(apt))
}

func (h *Handler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	apt, err := h.svc.GetAppointment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toAppointmentResponse(apt))
}

func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	apts, err := h.svc.ListAppointments(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]appointmentResponse, len(apts))
	for i := range apts {
		out[i] = toAppointmentResponse(&apts[i])
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAppointment(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
