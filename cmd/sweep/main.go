// Разовый прогон автоназначения для внешнего cron
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/app"
	"github.com/m04kA/SMC-ClassBookingService/internal/config"
	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	"github.com/m04kA/SMC-ClassBookingService/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	timeout := flag.Duration("timeout", 10*time.Minute, "run timeout")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize application: %v", err)
	}
	defer application.Close()

	result, err := application.Sweeper().Execute(ctx)
	if err != nil {
		log.Error("Sweep failed: %v", err)
		application.Close()
		os.Exit(1)
	}

	if result.Skipped {
		fmt.Printf("skipped: sweep for %s is already running\n", result.TargetDate.Format(domain.DateFormat))
		return
	}
	fmt.Printf("assigned %d students for %s, %d left without a slot, %d seats still free\n",
		result.Assigned, result.TargetDate.Format(domain.DateFormat), len(result.Unassigned), result.FreeSeats)
}
