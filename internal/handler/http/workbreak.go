package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/attendly/worktime-backend-go/internal/domain/workbreak"
	"github.com/attendly/worktime-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type BreakHandler interface {
	Open(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	ListByWorkDay(w http.ResponseWriter, r *http.Request)
}

type breakHandlerImpl struct {
	breakService workbreak.BreakService
}

func NewBreakHandler(breakService workbreak.BreakService) BreakHandler {
	return &breakHandlerImpl{
		breakService: breakService,
	}
}

// Open implements BreakHandler.
func (h *breakHandlerImpl) Open(w http.ResponseWriter, r *http.Request) {
	var req workbreak.OpenBreakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.breakService.Open(r.Context(), req, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Break opened", result)
}

// Close implements BreakHandler.
func (h *breakHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.breakService.Close(r.Context(), id, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByWorkDay implements BreakHandler.
func (h *breakHandlerImpl) ListByWorkDay(w http.ResponseWriter, r *http.Request) {
	workDayID := chi.URLParam(r, "workDayID")

	result, err := h.breakService.ListByWorkDay(r.Context(), workDayID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
