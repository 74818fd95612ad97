package api

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"

	"volunteerhub-backend/internal/security"
	"volunteerhub-backend/internal/service"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth         *AuthHandler
	Orgs         *OrgHandler
	Staff        *StaffHandler
	Events       *EventHandler
	Applications *ApplicationHandler
	Attendance   *AttendanceHandler
	Certificates *CertificateHandler
}

func NewHandlers(
	auth service.AuthService,
	orgs service.OrgService,
	admin service.AdminService,
	staff service.StaffService,
	events service.EventService,
	apps service.ApplicationService,
	attendance service.AttendanceService,
	certs service.CertificateService,
) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(auth),
		Orgs:         NewOrgHandler(orgs, admin),
		Staff:        NewStaffHandler(staff),
		Events:       NewEventHandler(events),
		Applications: NewApplicationHandler(apps),
		Attendance:   NewAttendanceHandler(attendance),
		Certificates: NewCertificateHandler(certs),
	}
}

// NewRouter wires all routes under /api/v1. Public routes take no or
// optional authentication; everything else sits behind the bearer-token
// middleware.
func NewRouter(h *Handlers, tokens security.TokenManager, db *sql.DB) *mux.Router {
	auth := NewAuthenticator(tokens)

	r := mux.NewRouter()
	r.Use(RequestID, Logging, Recovery)

	r.HandleFunc("/health", healthHandler(db)).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()

	// Public.
	v1.HandleFunc("/auth/register", h.Auth.Register).Methods(http.MethodPost)
	v1.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	v1.HandleFunc("/events", h.Events.ListPublished).Methods(http.MethodGet)
	v1.Handle("/events/{eventID:[0-9]+}", auth.Optional(http.HandlerFunc(h.Events.Get))).Methods(http.MethodGet)
	v1.Handle("/orgs/{orgID:[0-9]+}", auth.Optional(http.HandlerFunc(h.Orgs.Get))).Methods(http.MethodGet)

	// Authenticated.
	p := v1.NewRoute().Subrouter()
	p.Use(auth.Require)

	p.HandleFunc("/auth/me", h.Auth.Me).Methods(http.MethodGet)
	p.HandleFunc("/me/applications", h.Applications.ListMine).Methods(http.MethodGet)
	p.HandleFunc("/me/history", h.Applications.History).Methods(http.MethodGet)

	p.HandleFunc("/orgs", h.Orgs.Create).Methods(http.MethodPost)
	p.HandleFunc("/orgs/my", h.Orgs.ListMine).Methods(http.MethodGet)
	p.HandleFunc("/orgs/{orgID:[0-9]+}", h.Orgs.Update).Methods(http.MethodPatch)
	p.HandleFunc("/orgs/{orgID:[0-9]+}/staff", h.Orgs.ListMembers).Methods(http.MethodGet)
	p.HandleFunc("/orgs/{orgID:[0-9]+}/staff/{userID:[0-9]+}", h.Orgs.SuspendMember).Methods(http.MethodDelete)
	p.HandleFunc("/orgs/{orgID:[0-9]+}/is-staff", h.Staff.IsStaff).Methods(http.MethodGet)
	p.HandleFunc("/orgs/{orgID:[0-9]+}/events", h.Events.Create).Methods(http.MethodPost)
	p.HandleFunc("/orgs/{orgID:[0-9]+}/events", h.Events.ListByOrg).Methods(http.MethodGet)

	p.HandleFunc("/orgs/{orgID:[0-9]+}/staff-applications", h.Staff.Apply).Methods(http.MethodPost)
	p.HandleFunc("/orgs/{orgID:[0-9]+}/staff-applications", h.Staff.List).Methods(http.MethodGet)
	p.HandleFunc("/orgs/{orgID:[0-9]+}/staff-applications/my", h.Staff.Mine).Methods(http.MethodGet)
	p.HandleFunc("/orgs/{orgID:[0-9]+}/staff-applications/my", h.Staff.Cancel).Methods(http.MethodDelete)
	p.HandleFunc("/orgs/{orgID:[0-9]+}/staff-applications/{appID:[0-9]+}/decide", h.Staff.Decide).Methods(http.MethodPatch)

	p.HandleFunc("/events/{eventID:[0-9]+}/publish", h.Events.Publish).Methods(http.MethodPost)
	p.HandleFunc("/events/{eventID:[0-9]+}/cancel", h.Events.Cancel).Methods(http.MethodPost)
	p.HandleFunc("/events/{eventID:[0-9]+}/complete", h.Events.Complete).Methods(http.MethodPost)
	p.HandleFunc("/events/{eventID:[0-9]+}/is-staff", h.Events.IsStaff).Methods(http.MethodGet)

	p.HandleFunc("/events/{eventID:[0-9]+}/apply", h.Applications.Apply).Methods(http.MethodPost)
	p.HandleFunc("/events/{eventID:[0-9]+}/apply", h.Applications.Cancel).Methods(http.MethodDelete)
	p.HandleFunc("/events/{eventID:[0-9]+}/applications", h.Applications.ListByEvent).Methods(http.MethodGet)
	p.HandleFunc("/events/{eventID:[0-9]+}/applications/{appID:[0-9]+}/decide", h.Applications.Decide).Methods(http.MethodPatch)

	p.HandleFunc("/events/{eventID:[0-9]+}/attendance/{userID:[0-9]+}", h.Attendance.Mark).Methods(http.MethodPut)
	p.HandleFunc("/events/{eventID:[0-9]+}/attendance", h.Attendance.ListByEvent).Methods(http.MethodGet)

	p.HandleFunc("/me/certificates", h.Certificates.Create).Methods(http.MethodPost)
	p.HandleFunc("/me/certificates", h.Certificates.List).Methods(http.MethodGet)
	p.HandleFunc("/me/certificates/{certID:[0-9]+}", h.Certificates.Get).Methods(http.MethodGet)
	p.HandleFunc("/me/certificates/{certID:[0-9]+}", h.Certificates.Update).Methods(http.MethodPatch)
	p.HandleFunc("/me/certificates/{certID:[0-9]+}", h.Certificates.Delete).Methods(http.MethodDelete)

	p.HandleFunc("/admin/orgs", h.Orgs.AdminList).Methods(http.MethodGet)
	p.HandleFunc("/admin/orgs/pending", h.Orgs.AdminListPending).Methods(http.MethodGet)
	p.HandleFunc("/admin/orgs/{orgID:[0-9]+}/approve", h.Orgs.AdminApprove).Methods(http.MethodPost)
	p.HandleFunc("/admin/orgs/{orgID:[0-9]+}/suspend", h.Orgs.AdminSuspend).Methods(http.MethodPost)

	return r
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
