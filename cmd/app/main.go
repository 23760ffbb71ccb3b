package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/crew-scheduler/internal/config"
	"github.com/bagdasarian/crew-scheduler/internal/db"
	"github.com/bagdasarian/crew-scheduler/internal/handler"
	"github.com/bagdasarian/crew-scheduler/internal/handler/server"
	"github.com/bagdasarian/crew-scheduler/internal/repository"
	"github.com/bagdasarian/crew-scheduler/internal/repository/postgres"
	"github.com/bagdasarian/crew-scheduler/internal/repository/static"
	"github.com/bagdasarian/crew-scheduler/internal/service"
	"github.com/bagdasarian/crew-scheduler/internal/store"
)

func main() {
	cfg := config.Load()

	var teamRepo repository.TeamRepository
	var resourceRepo repository.ResourceRepository
	var assignmentRepo repository.AssignmentRepository

	database, err := db.NewPostgres(cfg)
	if err != nil {
		if !cfg.Seed.AllowFallback {
			log.Fatalf("failed to connect to database: %v", err)
		}
		log.Printf("database unavailable, using built-in dataset: %v", err)
		teamRepo = static.NewTeamRepository()
		resourceRepo = static.NewResourceRepository()
		assignmentRepo = static.NewAssignmentRepository()
	} else {
		log.Println("Successfully connected to database!")
		defer database.Close()
		teamRepo = postgres.NewTeamRepository(database)
		resourceRepo = postgres.NewResourceRepository(database)
		assignmentRepo = postgres.NewAssignmentRepository(database)
	}

	scheduleService := service.NewScheduleService(
		store.New(),
		teamRepo,
		resourceRepo,
		assignmentRepo,
		cfg.Seed.AllowFallback,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := scheduleService.Initialize(ctx); err != nil {
		cancel()
		log.Fatalf("failed to load initial schedule: %v", err)
	}
	cancel()

	h := handler.NewHandler(scheduleService)
	srv := server.NewServer(h, cfg.Server.Addr)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
