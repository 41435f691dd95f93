package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/security"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/service"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/storage"
)

// Services bundles everything the router needs.
type Services struct {
	Auth         service.AuthService
	Property     service.PropertyService
	Tenant       service.TenantService
	Payment      service.PaymentService
	Report       service.ReportService
	Maintenance  service.MaintenanceService
	Notification service.NotificationService
	Tokens       security.TokenManager
	MockStorage  *storage.MockStorageService
}

// NewRouter builds the full API surface under /api/v1.
func NewRouter(s Services) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public endpoints
	authHandler := NewAuthHandler(s.Auth)
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	// Mock storage endpoints mimic presigned S3 URLs; the unguessable key in
	// the query string is the credential, as with real presigned URLs.
	if s.MockStorage != nil {
		uploads := NewDocumentUploadHandler(s.MockStorage)
		api.HandleFunc("/upload/{token}", uploads.HandleMockUpload).Methods("PUT")
		api.HandleFunc("/download/file", uploads.HandleMockDownload).Methods("GET")
	}

	// Everything below requires a valid access token.
	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(s.Tokens))

	staffOnly := RequireRoles(domain.RoleLandlord, domain.RolePropertyManager, domain.RoleAgent)
	managersOnly := RequireRoles(domain.RoleLandlord, domain.RolePropertyManager)

	// Properties
	propertyHandler := NewPropertyHandler(s.Property)
	authed.Handle("/properties", staffOnly(http.HandlerFunc(propertyHandler.Create))).Methods("POST")
	authed.HandleFunc("/properties", propertyHandler.List).Methods("GET")
	authed.HandleFunc("/properties/{id:[0-9]+}", propertyHandler.Get).Methods("GET")
	authed.Handle("/properties/{id:[0-9]+}", staffOnly(http.HandlerFunc(propertyHandler.Update))).Methods("PUT")
	authed.Handle("/properties/{id:[0-9]+}", managersOnly(http.HandlerFunc(propertyHandler.Delete))).Methods("DELETE")

	// Tenants
	tenantHandler := NewTenantHandler(s.Tenant)
	authed.Handle("/tenants", staffOnly(http.HandlerFunc(tenantHandler.Create))).Methods("POST")
	authed.Handle("/tenants", staffOnly(http.HandlerFunc(tenantHandler.List))).Methods("GET")
	authed.HandleFunc("/tenants/{id:[0-9]+}", tenantHandler.Get).Methods("GET")
	authed.HandleFunc("/tenants/{id:[0-9]+}/balances", tenantHandler.Balances).Methods("GET")
	authed.Handle("/tenants/{id:[0-9]+}", staffOnly(http.HandlerFunc(tenantHandler.Update))).Methods("PUT")
	authed.Handle("/tenants/{id:[0-9]+}/reassign", staffOnly(http.HandlerFunc(tenantHandler.Reassign))).Methods("POST")
	authed.Handle("/tenants/{id:[0-9]+}", staffOnly(http.HandlerFunc(tenantHandler.Remove))).Methods("DELETE")

	// Payments
	paymentHandler := NewPaymentHandler(s.Payment)
	authed.Handle("/payments", staffOnly(http.HandlerFunc(paymentHandler.Record))).Methods("POST")
	authed.Handle("/payments/submit", RequireRoles(domain.RoleTenant)(http.HandlerFunc(paymentHandler.Submit))).Methods("POST")
	authed.Handle("/payments/pending", managersOnly(http.HandlerFunc(paymentHandler.ListPending))).Methods("GET")
	authed.HandleFunc("/payments/{id:[0-9]+}", paymentHandler.Get).Methods("GET")
	authed.Handle("/payments/{id:[0-9]+}", staffOnly(http.HandlerFunc(paymentHandler.Update))).Methods("PUT")
	authed.Handle("/payments/{id:[0-9]+}/approve", managersOnly(http.HandlerFunc(paymentHandler.Approve))).Methods("POST")
	authed.Handle("/payments/{id:[0-9]+}/reject", managersOnly(http.HandlerFunc(paymentHandler.Reject))).Methods("POST")
	authed.HandleFunc("/tenants/{id:[0-9]+}/payments", paymentHandler.ListByTenant).Methods("GET")
	authed.HandleFunc("/tenants/{id:[0-9]+}/payments/preview", paymentHandler.Preview).Methods("GET")

	// Reports
	reportHandler := NewReportHandler(s.Report)
	authed.Handle("/reports/dashboard", staffOnly(http.HandlerFunc(reportHandler.Dashboard))).Methods("GET")
	authed.Handle("/reports/overdue", staffOnly(http.HandlerFunc(reportHandler.Overdue))).Methods("GET")
	authed.Handle("/reports/commission/{id:[0-9]+}", staffOnly(http.HandlerFunc(reportHandler.Commission))).Methods("GET")

	// Maintenance
	maintenanceHandler := NewMaintenanceHandler(s.Maintenance)
	authed.HandleFunc("/maintenance", maintenanceHandler.Open).Methods("POST")
	authed.Handle("/maintenance", staffOnly(http.HandlerFunc(maintenanceHandler.List))).Methods("GET")
	authed.HandleFunc("/maintenance/{id:[0-9]+}", maintenanceHandler.Get).Methods("GET")
	authed.Handle("/maintenance/{id:[0-9]+}/start", staffOnly(http.HandlerFunc(maintenanceHandler.Start))).Methods("POST")
	authed.Handle("/maintenance/{id:[0-9]+}/resolve", staffOnly(http.HandlerFunc(maintenanceHandler.Resolve))).Methods("POST")
	authed.HandleFunc("/properties/{id:[0-9]+}/maintenance", maintenanceHandler.ListByProperty).Methods("GET")

	// Documents (presigned-URL issuance; the PUT/GET endpoints above serve
	// the URLs this hands out)
	if s.MockStorage != nil {
		uploads := NewDocumentUploadHandler(s.MockStorage)
		authed.Handle("/documents/upload-url", staffOnly(http.HandlerFunc(uploads.RequestUploadURL))).Methods("POST")
		authed.HandleFunc("/documents/download-url", uploads.RequestDownloadURL).Methods("GET")
	}

	// Notifications
	notificationHandler := NewNotificationHandler(s.Notification)
	authed.HandleFunc("/notifications", notificationHandler.List).Methods("GET")
	authed.HandleFunc("/notifications/{id:[0-9]+}/read", notificationHandler.MarkAsRead).Methods("POST")

	return router
}
