package api

import (
	"net/http"

	"volunteerhub-backend/internal/service"
)

type CertificateHandler struct {
	certs service.CertificateService
}

func NewCertificateHandler(certs service.CertificateService) *CertificateHandler {
	return &CertificateHandler{certs: certs}
}

func (h *CertificateHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	var in service.CertificateInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	cert, err := h.certs.Create(r.Context(), actor, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, cert)
}

func (h *CertificateHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "certID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	cert, err := h.certs.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cert)
}

func (h *CertificateHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	certs, err := h.certs.List(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, certs)
}

func (h *CertificateHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "certID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var in service.CertificateInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	cert, err := h.certs.Update(r.Context(), actor, id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cert)
}

func (h *CertificateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "certID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.certs.Delete(r.Context(), actor, id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
