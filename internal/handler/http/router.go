package http

import (
	"log/slog"
	"os"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/config"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/handler/http/middleware"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth         AuthHandler
	User         UserHandler
	Attendance   AttendanceHandler
	Task         TaskHandler
	Document     DocumentHandler
	Notification NotificationHandler
	Certificate  CertificateHandler
	Report       ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ims-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Public certificate verification
		r.Get("/certificates/verify/{serial}", h.Certificate.Verify)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", h.User.GetProfile)
				r.Put("/me", h.User.UpdateProfile)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/interns", h.User.ListInterns)
					r.Post("/{id}/approve", h.User.ApproveRegistration)
					r.Post("/{id}/disapprove", h.User.DisapproveRegistration)
					r.Put("/{id}/hours-target", h.User.SetHoursTarget)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				// Intern only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireIntern)
					r.Post("/clock-in", h.Attendance.ClockIn)
					r.Post("/clock-out", h.Attendance.ClockOut)
					r.Post("/mark-absent", h.Attendance.MarkAbsent)
				})
				r.Get("/my", h.Attendance.GetMyAttendance)

				// Reviewing staff
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Get("/", h.Attendance.List)
					r.Get("/{id}", h.Attendance.Get)
					r.Post("/{id}/approve", h.Attendance.Approve)
					r.Post("/{id}/reject", h.Attendance.Reject)
					r.Delete("/{id}", h.Attendance.Delete)
					r.Post("/{id}/restore", h.Attendance.Restore)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Delete("/{id}/purge", h.Attendance.Purge)
					r.Post("/sweep", h.Attendance.RunSweep)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/my", h.Task.ListMine)
				r.Get("/{id}", h.Task.Get)

				// Intern only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireIntern)
					r.Post("/{id}/start", h.Task.Start)
					r.Post("/{id}/submit", h.Task.Submit)
				})

				// Reviewing staff
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Post("/", h.Task.Create)
					r.Get("/assigned", h.Task.ListAssigned)
					r.Put("/{id}", h.Task.Update)
					r.Delete("/{id}", h.Task.Delete)
					r.Post("/{id}/complete", h.Task.Complete)
				})
			})

			r.Route("/documents", func(r chi.Router) {
				r.Get("/my", h.Document.ListMine)
				r.Get("/{id}/download", h.Document.Download)

				// Intern only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireIntern)
					r.Post("/", h.Document.Upload)
					r.Delete("/{id}", h.Document.Delete)
				})

				// Reviewing staff
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Get("/pending", h.Document.ListPending)
					r.Post("/{id}/approve", h.Document.Approve)
					r.Post("/{id}/reject", h.Document.Reject)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.CountUnread)
				r.Get("/stream", h.Notification.Stream)
				r.Post("/read-all", h.Notification.MarkAllRead)
				r.Post("/{id}/read", h.Notification.MarkRead)
				r.Delete("/{id}", h.Notification.Delete)
			})

			r.Route("/certificates", func(r chi.Router) {
				r.Get("/my", h.Certificate.GetMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", h.Certificate.List)
					r.Post("/issue/{userID}", h.Certificate.Issue)
				})
			})

			// Reviewing staff
			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Get("/attendance.xlsx", h.Report.AttendanceExport)
				r.Get("/intern-hours", h.Report.HoursSummary)
			})
		})
	})

	return r
}
