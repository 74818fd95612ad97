package api

import (
	"net/http"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"
)

type ApplicationHandler struct {
	apps service.ApplicationService
}

func NewApplicationHandler(apps service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var in struct {
		Message string `json:"message"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	app, err := h.apps.Apply(r.Context(), actor, eventID, in.Message)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (h *ApplicationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	app, err := h.apps.Cancel(r.Context(), actor, eventID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *ApplicationHandler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	status := domain.ApplicationStatus(r.URL.Query().Get("status"))
	apps, readOnly, err := h.apps.ListByEvent(r.Context(), actor, eventID, status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, applicationList[domain.EventApplication]{Applications: apps, ReadOnly: readOnly})
}

func (h *ApplicationHandler) Decide(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	appID, err := pathID(r, "appID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var in struct {
		Decision domain.Decision `json:"decision"`
		Note     string          `json:"note"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	app, err := h.apps.Decide(r.Context(), actor, eventID, appID, in.Decision, in.Note)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	apps, err := h.apps.ListMine(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *ApplicationHandler) History(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	entries, err := h.apps.History(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
