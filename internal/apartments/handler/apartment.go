package handler

import (
	"net/http"

	"aptbook/internal/apartments/service"
	httputil "aptbook/pkg/http"
	"aptbook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type ApartmentHandler struct {
	service service.ApartmentService
	log     *logger.Logger
}

func NewApartmentHandler(service service.ApartmentService, log *logger.Logger) *ApartmentHandler {
	return &ApartmentHandler{
		service: service,
		log:     log,
	}
}

func (h *ApartmentHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	apartments, err := h.service.List(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, apartments); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "error", err)
	}
}

func (h *ApartmentHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/apartments", h.List)
}
