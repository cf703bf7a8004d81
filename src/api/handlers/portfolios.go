package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/venoajie/trading-web-project/src/schemas"
	"github.com/venoajie/trading-web-project/src/utils"
)

func (h *Handler) GetPortfolios(w http.ResponseWriter, r *http.Request) {
	ctx := h.requestContext(r)

	portfolios, err := h.PortfolioController.ListPortfolios(ctx, UserFromContext(ctx))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, portfolios, http.StatusOK)
}

func (h *Handler) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	ctx := h.requestContext(r)

	var portfolioIn schemas.PortfolioCreate
	if err := decodeJSON(r, &portfolioIn); err != nil {
		h.HandleErrors(w, err)
		return
	}

	created, err := h.PortfolioController.CreatePortfolio(ctx, UserFromContext(ctx), &portfolioIn)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) GetPortfolioTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := h.requestContext(r)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, utils.UnprocessableEntity("invalid portfolio id"))
		return
	}

	transactions, err := h.PortfolioController.ListTransactions(ctx, UserFromContext(ctx), id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, transactions, http.StatusOK)
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := h.requestContext(r)

	var transactionIn schemas.TransactionCreate
	if err := decodeJSON(r, &transactionIn); err != nil {
		h.HandleErrors(w, err)
		return
	}

	created, err := h.PortfolioController.CreateTransaction(ctx, UserFromContext(ctx), &transactionIn)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, created, http.StatusCreated)
}
