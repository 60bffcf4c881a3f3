package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/searchprov/internal/config"
	"github.com/kailas-cloud/searchprov/internal/domain/mode"
	logpkg "github.com/kailas-cloud/searchprov/internal/logger"
	"github.com/kailas-cloud/searchprov/internal/metrics"
	indexrepo "github.com/kailas-cloud/searchprov/internal/repository/index"
	indexerrepo "github.com/kailas-cloud/searchprov/internal/repository/indexer"
	"github.com/kailas-cloud/searchprov/internal/searchapi/rest"
	"github.com/kailas-cloud/searchprov/internal/usecase/provision"
	"github.com/kailas-cloud/searchprov/internal/version"
)

// completionMessage is printed to stdout once every step succeeded.
const completionMessage = "Index created."

func newProvisionCmd(g *globalOptions) *cobra.Command {
	var metricsFile string

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create the index and run its indexers",
		Long: `Create or replace the index for the selected mode, then for each data
source: upsert the data source, reset the indexer if it already exists,
upsert the indexer and trigger a run. A throttled run is logged and
does not fail the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, m, err := loadSettings(g)
			if err != nil {
				return err
			}
			textfile := metricsFile
			if textfile == "" {
				textfile = cfg.Metrics.TextfilePath
			}
			level := g.logLevel
			if level == "" {
				level = cfg.Logging.Level
			}
			if err := runProvision(cmd.Context(), cfg, m, level, textfile); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), completionMessage)
			return err
		},
	}

	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write prometheus metrics to this textfile on exit")

	return cmd
}

// runProvision is the composition root: settings → logger → REST client → repositories → service.
func runProvision(ctx context.Context, cfg config.Config, m mode.Mode, level, metricsFile string) error {
	if err := cfg.Validate(m); err != nil {
		return err
	}

	env := config.GetEnv()
	logger, err := logpkg.NewLogger(env, level, cfg.Logging.File)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, logger = logpkg.WithFields(logpkg.ContextWithLogger(ctx, logger), zap.String("run_id", uuid.NewString()))

	logger.Info("Starting provisioning",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("mode", string(m)),
		zap.String("endpoint", cfg.SearchServiceURI),
		zap.String("api_version", cfg.SearchAPIVersion),
	)

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()
	if metricsFile != "" {
		defer func() {
			if err := metrics.WriteTextfile(metricsFile); err != nil {
				logger.Warn("Failed to write metrics", zap.String("path", metricsFile), zap.Error(err))
			}
		}()
	}

	client, err := rest.New(rest.Config{
		Endpoint:   cfg.SearchServiceURI,
		APIKey:     cfg.SearchServiceAdminAPIKey,
		APIVersion: cfg.SearchAPIVersion,
		Timeout:    time.Duration(cfg.RequestTimeoutSec) * time.Second,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("create search client: %w", err)
	}

	svc := provision.New(indexrepo.New(client), indexerrepo.New(client))
	res, err := svc.Provision(ctx, settingsFrom(cfg), m)
	if err != nil {
		logger.Error("Provisioning failed", zap.Error(err))
		return err
	}

	for _, ir := range res.Indexers {
		logger.Info("Indexer provisioned",
			zap.String("indexer", ir.Indexer),
			zap.Bool("reset", ir.Reset),
			zap.Bool("throttled", ir.Throttled),
		)
	}
	logger.Info("Provisioning complete", zap.String("index", res.Index))
	return nil
}

func settingsFrom(cfg config.Config) provision.Settings {
	return provision.Settings{
		CosmosConnectionString: cfg.CosmosDBConnectionString,
		CosmosDatabase:         cfg.CosmosDBDatabaseName,
		BlobAccountName:        cfg.BlobStorageAccountName,
		BlobConnectionString:   cfg.BlobStorageConnectionString,
	}
}
