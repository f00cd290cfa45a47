package main

import (
	"context"
	"log"
	"os"

	"hrdesk/internal/console"
	"hrdesk/internal/db"
	"hrdesk/internal/domain/employee"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/domain/performance"
	"hrdesk/internal/domain/recruitment"
	"hrdesk/internal/platform/config"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	store, err := db.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer store.Close()

	if err := db.Migrate(ctx, store, db.Dialect(cfg.DatabaseDSN)); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	if cfg.RunSeed {
		if err := db.Seed(ctx, store); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	app := console.New(
		console.NewIO(os.Stdin, os.Stdout),
		cfg.Role,
		employee.NewService(employee.NewStore(store)),
		leave.NewService(leave.NewStore(store)),
		payroll.NewService(payroll.NewStore(store), cfg.PayslipDir),
		performance.NewService(performance.NewStore(store)),
		recruitment.NewService(recruitment.NewStore(store)),
	)
	app.Run(ctx)
}
