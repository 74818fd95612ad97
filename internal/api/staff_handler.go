package api

import (
	"net/http"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"
)

type StaffHandler struct {
	staff service.StaffService
}

func NewStaffHandler(staff service.StaffService) *StaffHandler {
	return &StaffHandler{staff: staff}
}

func (h *StaffHandler) Apply(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	orgID, err := pathID(r, "orgID")
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
	app, err := h.staff.Apply(r.Context(), actor, orgID, in.Message)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (h *StaffHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	orgID, err := pathID(r, "orgID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	app, err := h.staff.Cancel(r.Context(), actor, orgID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *StaffHandler) Mine(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	orgID, err := pathID(r, "orgID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	app, err := h.staff.Mine(r.Context(), actor, orgID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	orgID, err := pathID(r, "orgID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	status := domain.ApplicationStatus(r.URL.Query().Get("status"))
	apps, readOnly, err := h.staff.List(r.Context(), actor, orgID, status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, applicationList[domain.StaffApplication]{Applications: apps, ReadOnly: readOnly})
}

func (h *StaffHandler) IsStaff(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	orgID, err := pathID(r, "orgID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	isStaff, err := h.staff.IsStaff(r.Context(), actor, orgID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_staff": isStaff})
}

func (h *StaffHandler) Decide(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	orgID, err := pathID(r, "orgID")
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
	app, err := h.staff.Decide(r.Context(), actor, orgID, appID, in.Decision, in.Note)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}
