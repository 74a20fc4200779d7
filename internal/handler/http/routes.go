package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	if len(h.allowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Encoding", traceIDHeader},
			ExposedHeaders:   []string{traceIDHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	// operational
	router.Get("/healthz", h.healthz)
	router.Get("/readyz", h.readyz)
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Post("/check-admin", h.checkAdmin)
		r.Post("/reset-password", h.resetPassword)
		r.Post("/password-hint", h.passwordHint)
		r.Post("/admin-whatsapp", h.adminWhatsApp)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/me", h.me)
			r.Post("/force-change-password", h.forceChangePassword)
		})
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Patch("/{id}/password", h.changePassword)
			r.Delete("/{id}", h.deleteUser)
		})

		r.Route("/api/clients", func(r chi.Router) {
			r.Get("/", h.listClients)
			r.Post("/", h.createClient)
			r.Patch("/{id}", h.updateClient)
			r.Delete("/{id}", h.deleteClient)
		})

		r.Route("/api/materials", func(r chi.Router) {
			r.Get("/", h.listMaterials)
			r.Post("/", h.createMaterial)
			r.Patch("/{id}", h.updateMaterial)
			r.Delete("/{id}", h.deleteMaterial)
		})

		r.Route("/api/stock-items", func(r chi.Router) {
			r.Get("/", h.listStockItems)
			r.Post("/", h.createStockItem)
			r.Patch("/{id}", h.updateStockItem)
			r.Delete("/{id}", h.deleteStockItem)
		})

		r.Route("/api/employees", func(r chi.Router) {
			r.Get("/", h.listEmployees)
			r.Post("/", h.createEmployee)
			r.Patch("/{id}", h.updateEmployee)
			r.Delete("/{id}", h.deleteEmployee)
		})

		r.Route("/api/calculations", func(r chi.Router) {
			r.Get("/", h.listCalculations)
			r.Post("/", h.createCalculation)
			r.Post("/preview", h.previewCalculation)
			r.Patch("/{id}", h.updateCalculation)
			r.Patch("/{id}/status", h.setCalculationStatus)
			r.Delete("/{id}", h.deleteCalculation)
		})

		r.Get("/api/settings", h.getSettings)
		r.Patch("/api/settings", h.updateSettings)

		r.Get("/api/commissions", h.commissions)

		r.Route("/api/backup", func(r chi.Router) {
			r.Use(withGZip)
			r.Get("/export", h.exportBackup)
			r.Post("/import", h.importBackup)
		})

		r.Get("/api/cep/{cep}", h.lookupPostalCode)
	})

	return router
}
