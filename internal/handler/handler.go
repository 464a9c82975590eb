package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"clinic-booking-api/internal/schedule"
)

type Handler struct {
	svc      *schedule.Service
	log      *zap.Logger
	validate *validator.Validate
}

func New(svc *schedule.Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log, validate: validator.New()}
}

// Routes builds the API router. Cross-cutting middleware (cors, logging,
// rate limiting) is attached by the caller.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/doctors", func(r chi.Router) {
		r.Post("/", h.CreateDoctor)
		r.Get("/", h.ListDoctors)
		r.Get("/{id}/slots", h.ListAvailableSlots)
	})

	r.Route("/appointments", func(r chi.Router) {
		r.Get("/", h.ListAppointments)
		r.Post("/", h.CreateAppointment)
		r.Get("/{id}", h.GetAppointment)
		r.Put("/{id}", h.UpdateAppointment)
		r.Delete("/{id}", h.DeleteAppointment)
	})

	return r
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("encode response", zap.Error(err))
	}
}

// writeError maps the service's failure taxonomy onto HTTP statuses. The
// engine's errors carry enough context for the message; storage failures
// stay opaque to the client.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var (
		ve *schedule.ValidationError
		oh *schedule.OutsideHoursError
		ce *schedule.ConflictError
	)
	switch {
	case errors.Is(err, schedule.ErrDoctorNotFound):
		h.writeJSON(w, http.StatusNotFound, errBody("doctor not found"))
	case errors.Is(err, schedule.ErrAppointmentNotFound):
		h.writeJSON(w, http.StatusNotFound, errBody("appointment not found"))
	case errors.As(err, &ve):
		h.writeJSON(w, http.StatusBadRequest, errBody(ve.Error()))
	case errors.As(err, &oh):
		h.writeJSON(w, http.StatusBadRequest, errBody("appointment is outside of working hours"))
	case errors.As(err, &ce):
		h.writeJSON(w, http.StatusConflict, errBody("time slot is not available, please choose a different time"))
	default:
		h.log.Error("internal error", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errBody("internal error"))
	}
}

func errBody(msg string) map[string]string {
	return map[string]string{"message": msg}
}

// decode unmarshals the body into dst and runs its validation tags.
func (h *Handler) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &schedule.ValidationError{Field: "body", Reason: "malformed JSON"}
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &schedule.ValidationError{Field: verrs[0].Field(), Reason: "required"}
		}
		return &schedule.ValidationError{Field: "body", Reason: err.Error()}
	}
	return nil
}
