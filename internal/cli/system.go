package cli

import (
	"fmt"

	"github.com/jurgenbaeza/habit-tracker/internal/keyring"
	"github.com/jurgenbaeza/habit-tracker/internal/logger"
	"github.com/jurgenbaeza/habit-tracker/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if !c.Force {
		if err := ctx.Store.Load(); err == nil {
			return fmt.Errorf("storage already initialized at %s (use --force to run migrations anyway)", ctx.Store.GetConfigPath())
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	fmt.Printf("Initialized storage at %s\n", ctx.Store.GetConfigPath())
	return nil
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *Context) error {
	// Init is idempotent: it opens the database and applies any pending
	// migrations.
	return ctx.Store.Init()
}

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running health checks...")

	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("  ✗ storage: %v\n", err)
		return fmt.Errorf("storage is not healthy")
	}
	fmt.Printf("  ✓ storage reachable (%s)\n", ctx.Store.GetConfigPath())

	habits, err := ctx.Store.GetAllHabits(true, true)
	if err != nil {
		fmt.Printf("  ✗ habits table: %v\n", err)
		return fmt.Errorf("storage is not healthy")
	}
	fmt.Printf("  ✓ habits table readable (%d habit(s))\n", len(habits))

	events, err := ctx.Store.GetAllEvents()
	if err != nil {
		fmt.Printf("  ✗ completion_events table: %v\n", err)
		return fmt.Errorf("storage is not healthy")
	}
	fmt.Printf("  ✓ completion_events table readable (%d event(s))\n", len(events))

	if keyring.IsAvailable() {
		fmt.Println("  ✓ OS keyring available")
	} else {
		fmt.Println("  - OS keyring unavailable (only needed for PostgreSQL credentials)")
	}

	fmt.Println("All checks passed.")
	return nil
}

type CredentialsSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string, including the password."`
}

func (c *CredentialsSetCmd) Run(ctx *Context) error {
	if !storage.HasEmbeddedCredentials(c.ConnectionString) {
		logger.Warn("Storing a connection string without an embedded password")
	}
	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return err
	}
	fmt.Println("Stored database connection string in the OS keyring.")
	return nil
}

type CredentialsClearCmd struct{}

func (c *CredentialsClearCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		return err
	}
	fmt.Println("Removed database connection string from the OS keyring.")
	return nil
}
