// Заведение демо преподавателей, студентов и окон на завтра в настроенном хранилище
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/m04kA/SMC-ClassBookingService/internal/app"
	"github.com/m04kA/SMC-ClassBookingService/internal/config"
	"github.com/m04kA/SMC-ClassBookingService/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	timeout := flag.Duration("timeout", time.Minute, "run timeout")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Storage.Driver == config.DriverMemory {
		fmt.Println("memory storage lives inside the service process, use storage.seed_demo_data instead")
		os.Exit(1)
	}
	// seed выполняется ниже явно
	cfg.Storage.SeedDemoData = false

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

	res, err := application.Seed(ctx)
	if err != nil {
		log.Error("Seed failed: %v", err)
		application.Close()
		os.Exit(1)
	}

	fmt.Printf("created %d teachers, %d students, %d windows; %d already existed\n",
		res.Teachers, res.Students, res.Windows, res.Existing)
}
