package http

import (
	"net/http"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type upHandler struct{}

// NewUpHandler returns the liveness probe handler.
func NewUpHandler() AppHttpHandler {
	return &upHandler{}
}

// Handle answers GET /up with an empty 200 once the process is serving.
func (h *upHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(http.StatusOK)
	return nil
}
