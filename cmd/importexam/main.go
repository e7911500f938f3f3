package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/opostest/backend/config"
	"github.com/opostest/backend/database"
	"github.com/opostest/backend/internal/logger"
	"github.com/opostest/backend/internal/model"
	"github.com/opostest/backend/internal/repository"
	"github.com/opostest/backend/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "importexam",
		Short:        "Import an official exam CSV into a category",
		SilenceUsage: true,
		RunE:         runImport,
	}
	f := cmd.Flags()
	f.String("csv", "", "Path to the CSV file (required)")
	f.String("category", "", "Category slug or name (required)")
	f.Bool("migrate", false, "Run database migrations before importing")
	_ = cmd.MarkFlagRequired("csv")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func runImport(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("csv")
	category, _ := cmd.Flags().GetString("category")
	migrate, _ := cmd.Flags().GetBool("migrate")

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	logger.Init(cfg.LogLevel, cfg.Env)

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	db, err := database.NewDatabase(cfg)
	if err != nil {
		return err
	}
	if migrate {
		if err := db.AutoMigrate(model.All()...); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	svc := service.NewExamImportService(db, repository.NewCategoryRepository(db))
	result, err := svc.Import(cmd.Context(), category, raw)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("Import failed")
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
