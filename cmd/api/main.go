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

	"github.com/cmlabs-hris/lms-backend-go/internal/config"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/extrawork"
	"github.com/cmlabs-hris/lms-backend-go/internal/domain/leave"
	appHTTP "github.com/cmlabs-hris/lms-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/lock"
	"github.com/cmlabs-hris/lms-backend-go/internal/pkg/logger"
	"github.com/cmlabs-hris/lms-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/lms-backend-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/lms-backend-go/internal/repository/sqlite"
	employeeService "github.com/cmlabs-hris/lms-backend-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/lms-backend-go/internal/service/leave"
	"go.uber.org/zap"
)

type repositories struct {
	locker     employee.Locker
	employees  employee.EmployeeRepository
	leaves     leave.LeaveRepository
	extraWorks extrawork.ExtraWorkRepository
	close      func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	zapLogger, err := logger.New(cfg.App.LogLevel, cfg.App.Env)
	if err != nil {
		log.Fatal("Error building logger: ", err)
	}
	defer zapLogger.Sync()

	cal := calendar.Default()
	if cfg.Calendar.HolidaysFile != "" {
		cal, err = calendar.LoadFile(cfg.Calendar.HolidaysFile)
		if err != nil {
			zapLogger.Fatal("Failed to load holiday calendar", zap.String("path", cfg.Calendar.HolidaysFile), zap.Error(err))
		}
	}
	zapLogger.Info("Holiday calendar loaded", zap.Int("holidays", len(cal.Holidays())))

	repos, err := openRepositories(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to open storage", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer repos.close()

	registry := leaveService.NewRegistry(cal)
	employeeSvc := employeeService.NewEmployeeService(
		repos.locker,
		repos.employees,
		repos.leaves,
		repos.extraWorks,
		registry,
		cal,
		zapLogger,
	)
	leaveSvc := leaveService.NewLeaveService(
		repos.locker,
		repos.employees,
		repos.leaves,
		registry,
		zapLogger,
	)

	router := appHTTP.NewRouter(
		cfg.App,
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewHolidayHandler(cal),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zapLogger.Info("HTTP server running", zap.String("addr", server.Addr), zap.String("driver", cfg.Database.Driver))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("ListenAndServe error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("Shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zapLogger.Error("Forced shutdown", zap.Error(err))
	} else {
		zapLogger.Info("Server exited gracefully")
	}
}

func openRepositories(cfg *config.Config, zapLogger *zap.Logger) (*repositories, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := database.Connect(context.Background(), cfg.DatabaseURL(), cfg.Database.ConnectRetries, zapLogger)
		if err != nil {
			return nil, err
		}
		return &repositories{
			locker:     postgresql.NewEmployeeLocker(db),
			employees:  postgresql.NewEmployeeRepository(db),
			leaves:     postgresql.NewLeaveRepository(db),
			extraWorks: postgresql.NewExtraWorkRepository(db),
			close:      db.Close,
		}, nil

	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.Database.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &repositories{
			locker:     lock.NewKeyed(),
			employees:  sqlite.NewEmployeeRepository(store),
			leaves:     sqlite.NewLeaveRepository(store),
			extraWorks: sqlite.NewExtraWorkRepository(store),
			close:      func() { store.Close() },
		}, nil

	case config.DriverMemory:
		store := memory.NewStore()
		return &repositories{
			locker:     lock.NewKeyed(),
			employees:  memory.NewEmployeeRepository(store),
			leaves:     memory.NewLeaveRepository(store),
			extraWorks: memory.NewExtraWorkRepository(store),
			close:      func() {},
		}, nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
}
