package api

import (
	"net/http"

	"volunteerhub-backend/internal/service"
)

type AttendanceHandler struct {
	attendance service.AttendanceService
}

func NewAttendanceHandler(attendance service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

func (h *AttendanceHandler) Mark(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var in service.AttendanceInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	in.UserID = userID
	att, err := h.attendance.Mark(r.Context(), actor, eventID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, att)
}

func (h *AttendanceHandler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	actor, ok := mustActor(w, r)
	if !ok {
		return
	}
	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	records, err := h.attendance.ListByEvent(r.Context(), actor, eventID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}
