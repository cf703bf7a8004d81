package handlers

import (
	"net/http"
)

func (h *Handler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, map[string]string{"status": "ok"}, http.StatusOK)
}
