package http

import (
	"log/slog"
	"os"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
	"github.com/alsaqr-welding/portal-backend-go/internal/handler/http/middleware"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterDeps struct {
	JWTService  jwt.Service
	UserRepo    user.UserRepository
	FrontendURL string
	Env         string

	Auth         AuthHandler
	Employee     EmployeeHandler
	Transaction  TransactionHandler
	Attendance   AttendanceHandler
	Payroll      PayrollHandler
	Dashboard    DashboardHandler
	Notification NotificationHandler
	OCR          OCRHandler
	Export       ExportHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "alsaqr-portal"),
		slog.String("version", "v1.0.0"),
		slog.String("env", deps.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.ActAsHeader},
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
			r.Post("/login", deps.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))
			r.Use(middleware.ResolveActor(deps.UserRepo))

			r.Route("/transactions", func(r chi.Router) {
				r.Post("/expenses", deps.Transaction.SubmitExpense)
				r.Post("/topups", deps.Transaction.RequestTopUp)
				r.Get("/my", deps.Transaction.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", deps.Transaction.List)
					r.Post("/grants", deps.Transaction.GrantDirect)
					r.Post("/decisions", deps.Transaction.DecideBatch)
					r.Post("/{id}/decision", deps.Transaction.Decide)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/punch-in", deps.Attendance.PunchIn)
				r.Post("/punch-out", deps.Attendance.PunchOut)
				r.Get("/active", deps.Attendance.ActiveShift)
				r.Get("/my", deps.Attendance.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", deps.Attendance.List)
					r.Post("/{id}/approve", deps.Attendance.Approve)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my", deps.Payroll.MyLine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", deps.Payroll.Compute)
				})
			})

			r.Post("/ocr/receipts", deps.OCR.ScanReceipt)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", deps.Employee.List)
					r.Post("/", deps.Employee.Create)
					r.Get("/{id}", deps.Employee.Get)
				})

				r.Get("/dashboard/stats", deps.Dashboard.CompanyStats)

				r.Route("/notifications", func(r chi.Router) {
					r.Get("/", deps.Notification.List)
					r.Post("/{id}/read", deps.Notification.MarkRead)
					r.Delete("/", deps.Notification.Clear)
				})

				r.Route("/exports", func(r chi.Router) {
					r.Get("/transactions.csv", deps.Export.TransactionsCSV)
					r.Get("/payroll.csv", deps.Export.PayrollCSV)
					r.Get("/vouchers.xml", deps.Export.VouchersXML)
				})
			})
		})
	})
	return r
}
