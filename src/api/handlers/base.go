package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/venoajie/trading-web-project/src/api/controllers"
	"github.com/venoajie/trading-web-project/src/utils"
	"github.com/venoajie/trading-web-project/src/utils/auth"
)

type Handler struct {
	Logger              *logrus.Logger
	Tokens              *auth.TokenManager
	AuthController      controllers.AuthControllerI
	AIController        controllers.AIControllerI
	PortfolioController controllers.PortfolioControllerI
}

func NewHandler(controller *controllers.Controller, tokens *auth.TokenManager, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = utils.NewDiscardLogger()
	}
	return &Handler{
		Logger:              logger,
		Tokens:              tokens,
		AuthController:      controller.AuthController,
		AIController:        controller.AIController,
		PortfolioController: controller.PortfolioController,
	}
}

// requestContext detaches ctx from client cancellation so a disconnect does
// not abort downstream work mid-flight, and attaches the handler's logger.
func (h *Handler) requestContext(r *http.Request) context.Context {
	return utils.WithLogger(context.WithoutCancel(r.Context()), h.Logger)
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

// HandleErrors writes err to the client. HTTPErrors keep their status and
// message; anything else is logged and answered with a generic 500.
func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var httpErr *utils.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			h.Logger.WithField("status", httpErr.Code).Warn(httpErr.Message)
		}
	} else {
		h.Logger.WithError(err).Error("unhandled error")
	}
	utils.WriteError(w, err)
}

// decodeJSON reads the body into dst and validates it. Both malformed JSON and
// failed validation are reported as 422.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return utils.UnprocessableEntity("invalid request body: " + err.Error())
	}
	return utils.ValidateStruct(dst)
}
