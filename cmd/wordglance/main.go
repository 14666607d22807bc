// Command wordglance looks up a word or phrase, aggregating a dictionary
// and an encyclopedia source into one result. Besides the one-shot CLI it
// can run as a small HTTP service or as a telegram bot.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wordglance/internal/clipboard"
	"wordglance/internal/config"
	"wordglance/internal/lookup"
	"wordglance/internal/metrics"
	"wordglance/internal/render"
	"wordglance/internal/server"
	"wordglance/internal/source/freedict"
	"wordglance/internal/source/thesaurus"
	"wordglance/internal/source/wikipedia"
	"wordglance/internal/telegram"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var fromSelection bool

	root := &cobra.Command{
		Use:   "wordglance [word...]",
		Short: "Aggregated dictionary and encyclopedia lookup",
		Long: `wordglance looks up a word or phrase and aggregates definitions from the
Free Dictionary API with a Wikipedia summary into one result.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !fromSelection {
				return cmd.Help()
			}

			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			query := strings.Join(args, " ")
			if fromSelection {
				query, err = clipboard.ReadSelection()
				if err != nil {
					return err
				}
			}

			result, err := buildService(cfg, logger, nil).Lookup(cmd.Context(), query)
			if err != nil {
				return err
			}

			render.Text(os.Stdout, result)
			return nil
		},
	}

	root.Flags().BoolVar(&fromSelection, "selection", false, "look up the current primary selection instead of arguments")

	root.AddCommand(newServeCmd(), newBotCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve lookups over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			m := metrics.New()
			srv := server.New(buildService(cfg, logger, m), logger)

			httpServer := &http.Server{
				Addr:    cfg.ServerAddr,
				Handler: srv.Router(),
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server listening", zap.String("addr", cfg.ServerAddr))
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return fmt.Errorf("server failed: %w", err)
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		},
	}
}

func newBotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if cfg.TelegramToken == "" {
				return errors.New("TELEGRAM_BOT_TOKEN is required")
			}

			m := metrics.New()
			bot, err := telegram.New(telegram.Config{
				Token: cfg.TelegramToken,
				Debug: cfg.TelegramDebug,
			}, buildService(cfg, logger, m), logger, m)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			metricsServer := newMetricsServer(cfg.MetricsAddr)
			go func() {
				logger.Info("metrics listening", zap.String("addr", cfg.MetricsAddr))
				if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("metrics server failed", zap.Error(err))
				}
			}()

			runErr := bot.Run(ctx)

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				logger.Error("metrics shutdown", zap.Error(err))
			}

			if runErr != nil && !errors.Is(runErr, context.Canceled) {
				return runErr
			}
			return nil
		},
	}
}

func newMetricsServer(addr string) *http.Server {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	return &http.Server{Addr: addr, Handler: r}
}

func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

func buildService(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) *lookup.Service {
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	return lookup.New(lookup.Deps{
		Dictionary: freedict.New(freedict.Config{
			BaseURL:    cfg.DictionaryBaseURL,
			HTTPClient: httpClient,
		}, logger),
		Encyclopedia: wikipedia.New(wikipedia.Config{
			BaseURL:    cfg.WikipediaBaseURL,
			UserAgent:  cfg.UserAgent,
			HTTPClient: httpClient,
		}, logger),
		Thesaurus: thesaurus.NewStub(),
		Logger:    logger,
		Metrics:   m,
		Config: lookup.Config{
			SourceTimeout: cfg.SourceTimeout,
		},
	})
}
