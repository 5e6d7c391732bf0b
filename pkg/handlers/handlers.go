package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/deploywatch/deploywatch/pkg/logger"
	"github.com/gorilla/mux"
)

var _ DeploywatchHandler = (*Handler)(nil)

type Handler struct {
}

// NewHandler returns a new default Handler
func NewHandler() *Handler {
	return &Handler{}
}

func RegisterRoutes(r *mux.Router, handler DeploywatchHandler) {
	r.Use(LoggingMiddleware)

	r.Name("Healthz").Path("/healthz").Methods("GET").
		HandlerFunc(handler.Healthz)
	r.Name("Ping").Path("/api/v1/ping").Methods("GET").
		HandlerFunc(handler.Ping)

	r.Name("CreateWatch").Path("/api/watch").Methods("POST").
		HandlerFunc(handler.CreateWatch)
}

func JSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error(err)
		w.WriteHeader(500)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
