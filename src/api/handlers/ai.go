package handlers

import (
	"net/http"

	"github.com/venoajie/trading-web-project/src/schemas"
)

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := h.requestContext(r)
	user := UserFromContext(ctx)

	var request schemas.AIChatRequest
	if err := decodeJSON(r, &request); err != nil {
		h.HandleErrors(w, err)
		return
	}

	response, err := h.AIController.Chat(ctx, user, &request)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, response, http.StatusOK)
}
