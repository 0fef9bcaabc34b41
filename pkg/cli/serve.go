package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getcomicd/comicd/internal/cliconfig"
	"github.com/getcomicd/comicd/internal/storage"
	"github.com/getcomicd/comicd/pkg/api"
	"github.com/getcomicd/comicd/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	servePort         int
	serveLogLevel     string
	serveLogFormat    string
	serveReadTimeout  int
	serveWriteTimeout int
	serveCORSOrigins  []string
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the catalog server",
	Long: `Start the catalog server.

By default the server listens on port 4270 with a catalog seeded with
three comics. Flags override environment variables, which override the
built-in defaults.`,
	Example: `  # Start with defaults
  comicd serve

  # Start on a custom port with JSON logs
  comicd serve --port 3000 --log-format json

  # Restrict CORS to one origin
  comicd serve --cors-origin http://localhost:5173`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP server port (default 4270)")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	serveCmd.Flags().StringVar(&serveLogFormat, "log-format", "", "Log format: text, json")
	serveCmd.Flags().IntVar(&serveReadTimeout, "read-timeout", 0, "Read timeout in seconds")
	serveCmd.Flags().IntVar(&serveWriteTimeout, "write-timeout", 0, "Write timeout in seconds")
	serveCmd.Flags().StringSliceVar(&serveCORSOrigins, "cors-origin", nil, "Allowed CORS origin (repeatable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := cliconfig.Default()
	cliconfig.LoadEnv(&cfg)

	// Flags take precedence over environment.
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = serveLogLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = serveLogFormat
	}
	if cmd.Flags().Changed("read-timeout") {
		cfg.ReadTimeout = serveReadTimeout
	}
	if cmd.Flags().Changed("write-timeout") {
		cfg.WriteTimeout = serveWriteTimeout
	}
	if cmd.Flags().Changed("cors-origin") {
		cfg.CORSOrigins = serveCORSOrigins
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
	})

	store := storage.NewInMemoryCatalogStore(storage.SeedComics())

	opts := []api.Option{
		api.WithLogger(log),
		api.WithVersion(Version),
		api.WithTimeouts(
			time.Duration(cfg.ReadTimeout)*time.Second,
			time.Duration(cfg.WriteTimeout)*time.Second,
		),
	}
	if len(cfg.CORSOrigins) > 0 {
		cors := api.DefaultCORSConfig()
		cors.AllowedOrigins = cfg.CORSOrigins
		opts = append(opts, api.WithCORSConfig(cors))
	}

	srv := api.New(cfg.Port, store, opts...)
	if err := srv.Start(); err != nil {
		return err
	}
	log.Info("catalog seeded", "comics", store.Count())

	// Block until interrupted, then drain.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Info("shutting down")
	return srv.Stop()
}
