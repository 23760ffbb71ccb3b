package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	createdTeam, err := h.scheduleService.CreateTeam(r.Context(), req.Name, req.Description, req.Color)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateTeamResponse{
		Team: domainTeamToHTTP(createdTeam),
	})
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	var req DeleteTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	// каскадно удаляет и все назначения команды
	if err := h.scheduleService.DeleteTeam(r.Context(), req.TeamID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
