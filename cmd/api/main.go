package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/config"
	appHTTP "github.com/Azuronin/YMCA-Internship-Management-System/internal/handler/http"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/cron"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/database"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/email"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/jwt"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/oauth"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/sse"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/storage"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/repository/postgresql"
	attendanceService "github.com/Azuronin/YMCA-Internship-Management-System/internal/service/attendance"
	serviceAuth "github.com/Azuronin/YMCA-Internship-Management-System/internal/service/auth"
	certificateService "github.com/Azuronin/YMCA-Internship-Management-System/internal/service/certificate"
	documentService "github.com/Azuronin/YMCA-Internship-Management-System/internal/service/document"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/service/file"
	notificationService "github.com/Azuronin/YMCA-Internship-Management-System/internal/service/notification"
	reportService "github.com/Azuronin/YMCA-Internship-Management-System/internal/service/report"
	taskService "github.com/Azuronin/YMCA-Internship-Management-System/internal/service/task"
	userService "github.com/Azuronin/YMCA-Internship-Management-System/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	certificateRepo := postgresql.NewCertificateRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	hub := sse.NewHub()
	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub)
	authSvc := serviceAuth.NewAuthService(userRepo, JWTService, GoogleService)
	userSvc := userService.NewUserService(userRepo, emailService, notificationSvc)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, userRepo, fileService, notificationSvc)
	taskSvc := taskService.NewTaskService(taskRepo, userRepo, notificationSvc)
	documentSvc := documentService.NewDocumentService(documentRepo, userRepo, fileService, notificationSvc)
	certificateSvc := certificateService.NewCertificateService(certificateRepo, userRepo, emailService, notificationSvc)
	reportSvc := reportService.NewReportService(attendanceRepo, userRepo)

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, JWTService),
		User:         appHTTP.NewUserHandler(userSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Task:         appHTTP.NewTaskHandler(taskSvc),
		Document:     appHTTP.NewDocumentHandler(documentSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc, hub),
		Certificate:  appHTTP.NewCertificateHandler(certificateSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc).RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
	db.Pool.Close()
}
