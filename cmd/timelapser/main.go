package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/api"
	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/config"
	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/db"
	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/jobs"
	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/livedata"
	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/version"
)

func main() {
	ver := version.Load()
	log.Printf("Timelapser overlay service %s starting...", ver.Version)

	cfg := config.Load()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database, "migrations"); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	live := livedata.NewSource(rdb)

	srv := api.NewServer(cfg, database, live)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := jobs.NewQueue(cfg.RedisAddr)
	queue.RegisterHandler(jobs.TaskAssetSweep, jobs.NewAssetSweepHandler(srv.AssetRepo(), srv.AssetStore()))
	if err := queue.Start(ctx); err != nil {
		log.Fatalf("job queue failed to start: %v", err)
	}
	defer queue.Stop()

	// Nightly cleanup of watermark uploads no preset references anymore.
	scheduler := cron.New()
	scheduler.AddFunc("0 3 * * *", func() {
		if _, err := queue.EnqueueUnique(jobs.TaskAssetSweep, jobs.SweepPayload{}, "assets:sweep"); err != nil {
			log.Printf("could not enqueue asset sweep: %v", err)
		}
	})
	scheduler.Start()
	defer scheduler.Stop()

	srv.StartLiveTicker(ctx, 5*time.Second)

	httpServer := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      srv,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on :%d", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
}
