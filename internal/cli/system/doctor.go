package system

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/smokefree/internal/backup"
	"github.com/julianstephens/smokefree/internal/cli"
	"github.com/julianstephens/smokefree/internal/constants"
	"github.com/julianstephens/smokefree/internal/keyring"
	"github.com/julianstephens/smokefree/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	check := func(name string, err error) {
		if err != nil {
			ctx.Printf("❌ %s: FAIL\n", name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
			return
		}
		ctx.Printf("✓ %s: OK\n", name)
	}
	skip := func(name, reason string) {
		ctx.Printf("⊘ %s: SKIPPED (%s)\n", name, reason)
	}
	warn := func(name string, err error) {
		if err != nil {
			ctx.Printf("⚠ %s: WARNING\n", name)
			ctx.Printf("   %v\n", err)
			return
		}
		ctx.Printf("✓ %s: OK\n", name)
	}

	// Check 1: storage reachable
	reachErr := ctx.Open()
	if reachErr == nil {
		reachErr = ctx.Store.Load()
	}
	check("Storage reachable", reachErr)
	reachable := reachErr == nil

	// Check 2: schema version
	switch {
	case !reachable:
		skip("Schema version", "storage not reachable")
	case ctx.Store.Backend() == constants.BackendJSON:
		skip("Schema version", "json backend has no schema")
	default:
		check("Schema version", checkSchemaVersion(ctx))
	}

	// Check 3: onboarding
	if reachable {
		ctx.Tracker.Load()
		if ctx.Tracker.SetupComplete() {
			check("Setup complete", nil)
		} else {
			check("Setup complete", fmt.Errorf("no profile found, run 'smokefree init'"))
		}
	} else {
		skip("Setup complete", "storage not reachable")
	}

	// Check 4: data integrity
	if reachable {
		result := ctx.Tracker.Validate()
		if result.HasProblems() {
			ctx.Printf("❌ Data validation: FAIL\n")
			for _, line := range strings.Split(strings.TrimSpace(result.FormatReport()), "\n") {
				ctx.Printf("   %s\n", line)
			}
			hasError = true
		} else {
			check("Data validation", nil)
		}
	} else {
		skip("Data validation", "storage not reachable")
	}

	// Check 5: backups (warning only)
	if mgr, err := ctx.BackupManager(); err != nil {
		skip("Backups present", err.Error())
	} else {
		warn("Backups present", checkBackupsPresent(mgr))
	}

	// Check 6: keyring, only relevant for PostgreSQL
	backend := ctx.Config.Storage.Backend
	if ctx.Store != nil {
		backend = ctx.Store.Backend()
	}
	if backend == constants.BackendPostgres {
		if keyring.IsAvailable() {
			check("OS keyring", nil)
		} else {
			warn("OS keyring", keyring.ErrKeyringUnavailable)
		}
	}

	// Check 7: clock sanity
	check("Clock/timezone", checkClock(time.Now()))

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	m, ok := ctx.Store.(storage.Migrator)
	if !ok {
		return nil
	}
	status, err := m.MigrationStatus()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if status.Current > status.Latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", status.Current, status.Latest)
	}
	if !status.UpToDate() {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", status.Current, status.Latest)
	}
	return nil
}

func checkBackupsPresent(mgr *backup.Manager) error {
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'smokefree backup create'")
	}
	return nil
}

func checkClock(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
