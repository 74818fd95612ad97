package api

import (
	"context"
	"net/http"
	"strconv"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"
)

type EventHandler struct {
	events service.EventService
}

func NewEventHandler(events service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	orgID, err := pathID(r, "orgID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var in service.EventInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	in.OrgID = orgID
	event, err := h.events.Create(r.Context(), actor, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "eventID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	// Anonymous callers get the zero actor, which passes only the
	// public-visibility branch.
	actor, _ := ActorFromContext(r.Context())
	event, err := h.events.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	filter := domain.EventFilter{
		City:  r.URL.Query().Get("city"),
		Query: r.URL.Query().Get("q"),
	}
	if raw := r.URL.Query().Get("org_id"); raw != "" {
		orgID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, r, service.Invalid("invalid org_id"))
			return
		}
		filter.OrgID = orgID
	}
	events, err := h.events.ListPublished(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) ListByOrg(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	orgID, err := pathID(r, "orgID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	events, err := h.events.ListByOrg(r.Context(), actor, orgID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.events.Publish)
}

func (h *EventHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.events.Cancel)
}

func (h *EventHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.events.Complete)
}

func (h *EventHandler) IsStaff(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "eventID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	isStaff, err := h.events.IsStaff(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_staff": isStaff})
}

func (h *EventHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, actor domain.Actor, id int64) (*domain.Event, error)) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "eventID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	event, err := fn(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}
