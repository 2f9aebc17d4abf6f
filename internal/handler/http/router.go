package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/sitekhata/labour-backend-go/internal/handler/http/middleware"
	"github.com/sitekhata/labour-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Site       SiteHandler
	Labour     LabourHandler
	Manager    ManagerHandler
	Attendance AttendanceHandler
	Payment    PaymentHandler
	Expense    ExpenseHandler
	Payroll    PayrollHandler
	Dashboard  DashboardHandler
	Audit      AuditHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "labour-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/sites", func(r chi.Router) {
					r.Get("/", h.Site.List)
					r.Post("/", h.Site.Create)
					r.Get("/{id}", h.Site.GetByID)
					r.Put("/{id}", h.Site.Update)
					r.Delete("/{id}", h.Site.Delete)
				})

				r.Route("/labours", func(r chi.Router) {
					r.Get("/", h.Labour.List)
					r.Post("/", h.Labour.Create)
					r.Get("/{id}", h.Labour.GetByID)
					r.Put("/{id}", h.Labour.Update)
					r.Delete("/{id}", h.Labour.Delete)
					r.Post("/{id}/documents", h.Labour.UploadDocument)
					r.Get("/{id}/documents/{kind}", h.Labour.DownloadDocument)

					r.Get("/{id}/attendance", h.Attendance.LabourMonth)
					r.Get("/{id}/payments", h.Payment.ListByLabour)
					r.Get("/{id}/expenses", h.Expense.ListByLabour)
					r.Get("/{id}/summary", h.Payroll.LabourSummary)
				})

				r.Route("/managers", func(r chi.Router) {
					r.Get("/", h.Manager.List)
					r.Post("/", h.Manager.Create)
					r.Put("/{id}", h.Manager.Update)
					r.Delete("/{id}", h.Manager.Delete)
				})

				r.Route("/payments", func(r chi.Router) {
					r.Get("/", h.Payment.ListBySite)
					r.Post("/", h.Payment.Create)
					r.Put("/{id}", h.Payment.Update)
					r.Delete("/{id}", h.Payment.Delete)
				})

				r.Route("/expenses", func(r chi.Router) {
					r.Get("/", h.Expense.ListBySite)
					r.Put("/", h.Expense.Upsert)
				})

				r.Get("/reports/payroll", h.Payroll.Report)

				r.Get("/dashboard/admin", h.Dashboard.Overview)
				r.Get("/dashboard/sites/{id}", h.Dashboard.SiteDetail)

				r.Get("/audit-logs", h.Audit.List)
			})

			// Manager only, scoped to the manager's site
			r.Route("/manager", func(r chi.Router) {
				r.Use(middleware.ManagerOnly)

				r.Get("/dashboard", h.Dashboard.ManagerSite)

				r.Route("/labours", func(r chi.Router) {
					r.Get("/", h.Labour.ManagerList)
					r.Get("/{id}/attendance", h.Attendance.LabourMonth)
					r.Get("/{id}/payments", h.Payment.ListByLabour)
					r.Get("/{id}/summary", h.Payroll.LabourSummary)
				})

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", h.Attendance.Sheet)
					r.Post("/", h.Attendance.Mark)
				})

				r.Route("/payments", func(r chi.Router) {
					r.Get("/", h.Payment.ListBySite)
					r.Post("/", h.Payment.Create)
					r.Put("/{id}", h.Payment.Update)
					r.Delete("/{id}", h.Payment.Delete)
				})

				r.Route("/expenses", func(r chi.Router) {
					r.Get("/", h.Expense.ListBySite)
					r.Put("/", h.Expense.Upsert)
				})
			})
		})
	})
	return r
}
