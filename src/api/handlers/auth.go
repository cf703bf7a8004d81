package handlers

import (
	"errors"
	"net/http"

	"github.com/venoajie/trading-web-project/src/schemas"
	"github.com/venoajie/trading-web-project/src/utils"
)

// maxFormMemory bounds the multipart login form kept in memory.
const maxFormMemory = 1 << 20

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := h.requestContext(r)

	var userIn schemas.UserCreate
	if err := decodeJSON(r, &userIn); err != nil {
		h.HandleErrors(w, err)
		return
	}

	user, err := h.AuthController.Register(ctx, &userIn)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, user, http.StatusOK)
}

// Login accepts the OAuth2 password form, urlencoded or multipart, with
// username and password fields.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := h.requestContext(r)

	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.HandleErrors(w, utils.UnprocessableEntity("invalid form body"))
		return
	}
	form := schemas.TokenRequest{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}
	if err := utils.ValidateStruct(&form); err != nil {
		h.HandleErrors(w, err)
		return
	}

	token, err := h.AuthController.Login(ctx, &form)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, token, http.StatusOK)
}
