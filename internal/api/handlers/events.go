package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventsnow/backend/internal/domain"
	"github.com/eventsnow/backend/internal/logutil"
	"github.com/eventsnow/backend/internal/service"
	"github.com/eventsnow/backend/internal/utils"
)

type EventHandler struct {
	events *service.EventService
}

func NewEventHandler(events *service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

type UploadEventRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Price string `json:"price"`
	Date  string `json:"date"`
	Info  string `json:"info"`
	Type  string `json:"type"`
}

type UploadEventResponse struct {
	Msg   string        `json:"msg"`
	Event *domain.Event `json:"event"`
}

type EventsResponse struct {
	Events []*domain.Event `json:"events"`
}

type EventResponse struct {
	Event *domain.Event `json:"event"`
}

func (h *EventHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req UploadEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.events.Upload(r.Context(), service.UploadEventInput{
		Name:  req.Name,
		Image: req.Image,
		Price: req.Price,
		Date:  req.Date,
		Info:  req.Info,
		Type:  req.Type,
	})
	if err != nil {
		var fields domain.FieldErrors
		switch {
		case errors.As(err, &fields):
			utils.WriteError(w, http.StatusBadRequest, fields...)
		case errors.Is(err, domain.ErrDuplicateEvent):
			utils.WriteError(w, http.StatusConflict, "event already exists")
		default:
			logger := logutil.GetOrDefault(r.Context())
			logger.Error().Err(err).Msg("event upload failed")
			utils.WriteError(w, http.StatusInternalServerError, "event upload failed")
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, UploadEventResponse{Msg: "event upload successful", Event: event})
}

func (h *EventHandler) Free(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.EventFree)
}

func (h *EventHandler) Pro(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.EventPro)
}

func (h *EventHandler) list(w http.ResponseWriter, r *http.Request, eventType domain.EventType) {
	events, err := h.events.ListByType(r.Context(), eventType)
	if err != nil {
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Str("type", string(eventType)).Msg("event listing failed")
		utils.WriteError(w, http.StatusInternalServerError, "failed to list events")
		return
	}

	utils.WriteJSON(w, http.StatusOK, EventsResponse{Events: events})
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "eventId")

	event, err := h.events.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			utils.WriteError(w, http.StatusNotFound, "event not found")
			return
		}
		logger := logutil.GetOrDefault(r.Context())
		logger.Error().Err(err).Str("event_id", id).Msg("event fetch failed")
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch event")
		return
	}

	utils.WriteJSON(w, http.StatusOK, EventResponse{Event: event})
}
