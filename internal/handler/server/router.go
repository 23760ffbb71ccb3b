package server

import (
	"net/http"

	"github.com/bagdasarian/crew-scheduler/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /schedule/get", h.GetSchedule)
	mux.HandleFunc("POST /assignment/create", h.CreateAssignment)
	mux.HandleFunc("POST /assignment/update", h.UpdateAssignment)
	mux.HandleFunc("POST /assignment/delete", h.DeleteAssignment)
	mux.HandleFunc("POST /team/add", h.CreateTeam)
	mux.HandleFunc("POST /team/delete", h.DeleteTeam)
	mux.HandleFunc("GET /team/leaderGaps", h.GetLeaderGaps)
	mux.HandleFunc("GET /changes", h.GetChanges)
	mux.HandleFunc("POST /changes/sync", h.SyncChanges)
	mux.HandleFunc("POST /changes/discard", h.DiscardChanges)
}
