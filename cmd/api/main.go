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

	"github.com/aicorp/command-center-go/internal/config"
	"github.com/aicorp/command-center-go/internal/fixtures"
	appHTTP "github.com/aicorp/command-center-go/internal/handler/http"
	"github.com/aicorp/command-center-go/internal/pkg/cron"
	"github.com/aicorp/command-center-go/internal/pkg/genai"
	"github.com/aicorp/command-center-go/internal/pkg/jwt"
	"github.com/aicorp/command-center-go/internal/pkg/sse"
	"github.com/aicorp/command-center-go/internal/repository/memory"
	attendanceService "github.com/aicorp/command-center-go/internal/service/attendance"
	authService "github.com/aicorp/command-center-go/internal/service/auth"
	dashboardService "github.com/aicorp/command-center-go/internal/service/dashboard"
	employeeService "github.com/aicorp/command-center-go/internal/service/employee"
	leaveService "github.com/aicorp/command-center-go/internal/service/leave"
	policyService "github.com/aicorp/command-center-go/internal/service/policy"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()

	genaiClient, err := genai.NewClient(ctx, cfg.GenAI)
	if err != nil {
		log.Fatal("Failed to initialize generative AI client:", err)
	}
	defer genaiClient.Close()

	now := time.Now()
	employeeRepo := memory.NewEmployeeRepository(fixtures.Employees(), fixtures.Assets())
	attendanceRepo := memory.NewAttendanceRepository(fixtures.AttendanceRecords(now))
	leaveRepo := memory.NewLeaveRequestRepository(fixtures.LeaveRequests(now))
	policyRepo := memory.NewPolicyRepository(fixtures.PolicyDocuments())
	failureRepo := memory.NewLoginFailureRepository()
	dashboardRepo := memory.NewDashboardRepository(employeeRepo, attendanceRepo, leaveRepo)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()

	scheduler := cron.NewScheduler()
	cron.RegisterFailurePrune(scheduler, failureRepo)
	scheduler.Start()
	defer scheduler.Stop()

	authSvc := authService.NewAuthService(genaiClient, failureRepo, jwtService, hub)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	policySvc := policyService.NewPolicyService(policyRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Policy:     appHTTP.NewPolicyHandler(policySvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Events:     appHTTP.NewEventsHandler(hub),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	case <-stop:
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Println("Shutdown error:", err)
		}
	}
}
