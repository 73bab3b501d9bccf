package cmd

import (
	"fmt"
	"time"

	"condo-maintenance-backend/internal/auth"
	"condo-maintenance-backend/internal/database"
	"condo-maintenance-backend/internal/seed"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load bootstrap condominiums, users and NBR templates",
	Long: `Load bootstrap data from a YAML file. Existing rows are kept, so the
command can run on every deploy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path := cfg.SeedFile
		if seedFile != "" {
			path = seedFile
		}
		data, err := seed.LoadFile(path)
		if err != nil {
			return err
		}

		// Postgres may still be starting under docker compose
		db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		res, err := seed.Apply(cmd.Context(), db, auth.NewArgon2Hasher(nil), data)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "condominios: %d, usuarios: %d, vinculos: %d, templates: %d created\n",
			res.Condominiums, res.Users, res.Links, res.Templates)
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		logrus.Info("Schema is up to date")
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Seed file (defaults to SEED_FILE)")
}

// connectWithRetry initializes the database, waiting for Postgres to accept connections
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{LogLevel: gormlogger.Silent}
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
