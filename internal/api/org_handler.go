package api

import (
	"net/http"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"
)

type OrgHandler struct {
	orgs  service.OrgService
	admin service.AdminService
}

func NewOrgHandler(orgs service.OrgService, admin service.AdminService) *OrgHandler {
	return &OrgHandler{orgs: orgs, admin: admin}
}

func (h *OrgHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	var in service.OrgInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	org, err := h.orgs.Create(r.Context(), actor, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, org)
}

func (h *OrgHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "orgID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	// Anonymous callers get the zero actor, which passes only the
	// public-visibility branch.
	actor, _ := ActorFromContext(r.Context())
	org, err := h.orgs.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

func (h *OrgHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	orgs, err := h.orgs.ListMine(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orgs)
}

func (h *OrgHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "orgID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var in service.OrgInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	org, err := h.orgs.Update(r.Context(), actor, id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

func (h *OrgHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "orgID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	members, err := h.orgs.ListMembers(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *OrgHandler) SuspendMember(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	orgID, err := pathID(r, "orgID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	member, err := h.orgs.SuspendMember(r.Context(), actor, orgID, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *OrgHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	status := domain.OrgStatus(r.URL.Query().Get("status"))
	orgs, err := h.admin.ListOrgs(r.Context(), actor, status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orgs)
}

func (h *OrgHandler) AdminListPending(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	orgs, err := h.admin.ListOrgs(r.Context(), actor, domain.OrgStatusPending)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orgs)
}

func (h *OrgHandler) AdminApprove(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "orgID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	org, err := h.admin.ApproveOrg(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

func (h *OrgHandler) AdminSuspend(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "orgID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	org, err := h.admin.SuspendOrg(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}
