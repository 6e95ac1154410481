// cmd/foodyctl/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/foodyhq/backend/internal/bootstrap"
	"github.com/foodyhq/backend/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string (defaults to env configuration)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "foodyctl",
	Short: "foodyctl manages the Foody backend store",
	Long:  `foodyctl runs the schema evolution plan against a store and inspects it, without starting the API server.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Evolve the database schema to the current shape",
	Long:  `Runs the full forward-only evolution plan. Safe to re-run and safe to race with a starting API instance.`,
	Run: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		db, err := openDatabase()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if err := bootstrap.New(db, logger).Run(ctx); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		fmt.Println("Schema is up to date")
	},
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the evolution steps without executing them",
	Run: func(cmd *cobra.Command, args []string) {
		for i, step := range bootstrap.Plan() {
			fmt.Printf("%2d. %s (%d statements)\n", i+1, step.Name, len(step.Statements))
			if verbose {
				for _, stmt := range step.Statements {
					fmt.Println(stmt)
				}
			}
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the foodyctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("foodyctl v1.0.0")
	},
}

func openDatabase() (*sql.DB, error) {
	dsn := dbConnString
	if dsn == "" {
		_ = godotenv.Load()
		dsn = config.Load().DSN()
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return db, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
