package main

import (
	"fmt"
	"net/http"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/config"
	appHTTP "github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/repository/postgresql"
	dayOffService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/dayoff"
	reportService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/report"
	trackingService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/tracking"
	userService "github.com/shiftdesk/shiftdesk-backend-go/internal/service/user"
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
	operationRepo := postgresql.NewOperationRepository(db)
	dayOffRepo := postgresql.NewDayOffRepository(db)

	trackingSvc := trackingService.NewTrackingService(operationRepo)
	userSvc := userService.NewUserService(db, userRepo, trackingSvc)
	dayOffSvc := dayOffService.NewDayOffService(dayOffRepo, cfg.DayOff)
	reportSvc := reportService.NewReportService(operationRepo, userRepo)

	trackingHandler := appHTTP.NewTrackingHandler(trackingSvc)
	dayOffHandler := appHTTP.NewDayOffHandler(dayOffSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	operationHandler := appHTTP.NewOperationHandler(operationRepo)

	router := appHTTP.NewRouter(
		userSvc,
		trackingHandler,
		dayOffHandler,
		reportHandler,
		userHandler,
		operationHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
