package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/crew-scheduler/internal/domain"
)

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	sched, err := h.scheduleService.GetSchedule(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainScheduleToHTTP(sched))
}

func (h *Handler) GetLeaderGaps(w http.ResponseWriter, r *http.Request) {
	teamID := r.URL.Query().Get("team_id")
	if teamID == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "team_id parameter is required",
		})
		return
	}

	from, err := parseTime("from", r.URL.Query().Get("from"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	to, err := parseTime("to", r.URL.Query().Get("to"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	gaps, err := h.scheduleService.LeaderGaps(r.Context(), teamID, from, to)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainGapsToHTTP(gaps))
}
