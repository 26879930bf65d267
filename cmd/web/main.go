package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tienda-tools/informe/pkg/render/excel"
	htmlrender "github.com/tienda-tools/informe/pkg/render/html"
	"github.com/tienda-tools/informe/pkg/render/pdf"
	"github.com/tienda-tools/informe/pkg/server"
	"github.com/tienda-tools/informe/pkg/services/config"
	"github.com/tienda-tools/informe/pkg/services/report"
	"github.com/tienda-tools/informe/pkg/store/postgres"
	invoicestore "github.com/tienda-tools/informe/pkg/store/postgres/invoice"
	inventorystore "github.com/tienda-tools/informe/pkg/store/postgres/inventory"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the monthly report web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to an optional YAML config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	db, err := postgres.NewDB(ctx, postgres.Settings{URL: cfg.DatabaseURL})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer db.Close()

	pdfPresenter, err := pdf.NewPresenter(cfg.FontDir)
	if err != nil {
		return fmt.Errorf("failed to load report fonts: %w", err)
	}

	pagePresenter, err := htmlrender.NewPresenter()
	if err != nil {
		return fmt.Errorf("failed to parse report templates: %w", err)
	}

	invoices, err := invoicestore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create invoice store: %w", err)
	}
	inventory, err := inventorystore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create inventory store: %w", err)
	}
	composer := report.NewComposer(invoices, inventory)

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Composer: composer,
			Page:     pagePresenter,
			PDF:      pdfPresenter,
			Excel:    excel.NewPresenter(),
			Logger:   logger,
		},
	})

	logger.Info().Str("addr", cfg.Addr).Msg("report service configured")
	return api.Start()
}
