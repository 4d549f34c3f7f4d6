// Package servecmder provides the serve command for running the API server.
package servecmder

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cadenzahq/cadenza/api"
	"github.com/cadenzahq/cadenza/pkg/config"
	embeddingsutils "github.com/cadenzahq/cadenza/pkg/embeddings/utils"
	"github.com/cadenzahq/cadenza/pkg/engine"
	eventstreamutils "github.com/cadenzahq/cadenza/pkg/eventstream/utils"
	"github.com/cadenzahq/cadenza/pkg/logger"
	vectorutils "github.com/cadenzahq/cadenza/pkg/vector/utils"
)

type serveCommander struct {
	listen string
	debug  bool
	logger *zap.Logger
}

const serveLongDesc string = `Run the Cadenza API server.

Exposes score analysis, rule search, visual recommendation, and preference
feedback over HTTP. Configuration follows the usual layering: flags over
environment (CADENZA_*) over config.toml over defaults.`

const serveShortDesc string = "Run the Cadenza API server"

func NewServeCmd() *cobra.Command {
	cmder := &serveCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}
			return cmder.run()
		},
	}

	cmd.Flags().StringVarP(&cmder.listen, "listen", "l", "", "Address for API server to listen on (default from config)")

	return cmd
}

func (c *serveCommander) run() error {
	c.logger = logger.NewLogger(c.debug)
	defer c.logger.Sync()

	v, err := config.InitViper("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.FromViper(v)

	listen := c.listen
	if listen == "" {
		listen = cfg.API.Listen
	}

	eng, err := c.newEngine(cfg)
	if err != nil {
		return err
	}
	defer eng.Close()

	server := api.NewServer(api.Config{ListenAddr: listen}, eng, c.logger)

	errChan := make(chan error, 1)
	go func() {
		if err := server.Run(); err != nil {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		c.logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		return server.Shutdown()
	}
}

func (c *serveCommander) newEngine(cfg *config.Config) (*engine.Engine, error) {
	embedder, err := embeddingsutils.NewEmbedder(&embeddingsutils.NewEmbedderOpts{
		ProviderType: cfg.Embedding.Provider,
		Target:       cfg.Embedding.Target,
		Model:        cfg.Embedding.Model,
		Dimensions:   cfg.Embedding.Dimensions,
		Logger:       c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}

	driver, err := vectorutils.NewDriver(&vectorutils.NewDriverOpts{
		ProviderType: cfg.VectorStore.Provider,
		Target:       cfg.VectorStore.Target,
		Dimensions:   cfg.Embedding.Dimensions,
		Logger:       c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating vector driver: %w", err)
	}

	var brokers []string
	if cfg.Eventstream.Brokers != "" {
		brokers = strings.Split(cfg.Eventstream.Brokers, ",")
	}
	publisher, err := eventstreamutils.NewPublisher(&eventstreamutils.NewPublisherOpts{
		ProviderType: cfg.Eventstream.Provider,
		Brokers:      brokers,
		Topic:        cfg.Eventstream.Topic,
		Logger:       c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating eventstream publisher: %w", err)
	}

	c.logger.Info("engine configured",
		zap.String("embedding_provider", cfg.Embedding.Provider),
		zap.String("vector_provider", cfg.VectorStore.Provider),
		zap.String("eventstream_provider", cfg.Eventstream.Provider),
	)

	return engine.New(engine.Config{
		Embedder:  embedder,
		Driver:    driver,
		Publisher: publisher,
		Logger:    c.logger,
	})
}
