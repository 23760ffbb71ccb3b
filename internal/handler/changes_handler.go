package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) GetChanges(w http.ResponseWriter, r *http.Request) {
	summary, err := h.scheduleService.ChangeSummary(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainSummaryToHTTP(summary, h.scheduleService.HasUnsavedChanges(r.Context())))
}

// SyncChanges подтверждает успешную синхронизацию: внешний клиент уже
// переиграл дифф во внешнюю систему и сообщает об этом сюда.
func (h *Handler) SyncChanges(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.MarkSynchronized(r.Context()); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DiscardChanges(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.DiscardChanges(r.Context()); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
