package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/alsaqr-welding/portal-backend-go/internal/config"
	domainAttendance "github.com/alsaqr-welding/portal-backend-go/internal/domain/attendance"
	domainNotification "github.com/alsaqr-welding/portal-backend-go/internal/domain/notification"
	domainTransaction "github.com/alsaqr-welding/portal-backend-go/internal/domain/transaction"
	domainTreasury "github.com/alsaqr-welding/portal-backend-go/internal/domain/treasury"
	domainUser "github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
	"github.com/alsaqr-welding/portal-backend-go/internal/fixtures"
	appHTTP "github.com/alsaqr-welding/portal-backend-go/internal/handler/http"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/database"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/jwt"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/ocr"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/storage"
	"github.com/alsaqr-welding/portal-backend-go/internal/repository/memory"
	"github.com/alsaqr-welding/portal-backend-go/internal/repository/postgresql"
	attendanceService "github.com/alsaqr-welding/portal-backend-go/internal/service/attendance"
	authService "github.com/alsaqr-welding/portal-backend-go/internal/service/auth"
	dashboardService "github.com/alsaqr-welding/portal-backend-go/internal/service/dashboard"
	employeeService "github.com/alsaqr-welding/portal-backend-go/internal/service/employee"
	notificationService "github.com/alsaqr-welding/portal-backend-go/internal/service/notification"
	payrollService "github.com/alsaqr-welding/portal-backend-go/internal/service/payroll"
	transactionService "github.com/alsaqr-welding/portal-backend-go/internal/service/transaction"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var (
		userRepo         domainUser.UserRepository
		transactionRepo  domainTransaction.TransactionRepository
		attendanceRepo   domainAttendance.AttendanceRepository
		notificationRepo domainNotification.NotificationRepository
		treasuryRepo     domainTreasury.TreasuryRepository
		runInTx          database.TxRunner
	)

	switch cfg.Store.Driver {
	case "memory":
		cashPool, err := decimal.NewFromString(cfg.Store.InitialCashPool)
		if err != nil {
			log.Fatal("Invalid INITIAL_CASH_POOL: ", err)
		}
		store := memory.NewStore(cashPool)
		userRepo = store.Users()
		transactionRepo = store.Transactions()
		attendanceRepo = store.Attendance()
		notificationRepo = store.Notifications()
		treasuryRepo = store.Treasury()
		runInTx = database.Passthrough()

		if cfg.Store.Seed {
			if err := fixtures.Seed(context.Background(), userRepo, transactionRepo); err != nil {
				log.Fatal("Failed to seed fixtures: ", err)
			}
		}
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			fmt.Println("Error connecting to database:", err)
			return
		}
		userRepo = postgresql.NewUserRepository(db)
		transactionRepo = postgresql.NewTransactionRepository(db)
		attendanceRepo = postgresql.NewAttendanceRepository(db)
		notificationRepo = postgresql.NewNotificationRepository(db)
		treasuryRepo = postgresql.NewTreasuryRepository(db)
		runInTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		}
	default:
		log.Fatal("Unsupported store driver: ", cfg.Store.Driver)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	receiptScanner := ocr.NewGeminiScanner(cfg.OCR.Model)

	authSvc := authService.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(userRepo)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)
	transactionSvc := transactionService.NewTransactionService(transactionRepo, userRepo, treasuryRepo, notificationSvc, runInTx)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo, runInTx)
	payrollSvc := payrollService.NewPayrollService(userRepo, transactionRepo, attendanceRepo)
	dashboardSvc := dashboardService.NewDashboardService(userRepo, transactionRepo, attendanceRepo, treasuryRepo)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:  JWTService,
		UserRepo:    userRepo,
		FrontendURL: cfg.App.FrontendURL,
		Env:         cfg.App.Env,

		Auth:         appHTTP.NewAuthHandler(authSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Transaction:  appHTTP.NewTransactionHandler(transactionSvc, fileStorage),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		OCR:          appHTTP.NewOCRHandler(receiptScanner),
		Export:       appHTTP.NewExportHandler(transactionSvc, payrollSvc, cfg.App.CompanyName),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
