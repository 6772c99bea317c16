package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/nats-conn-config/internal/app"
	"github.com/MKhiriev/nats-conn-config/internal/config"
	"github.com/MKhiriev/nats-conn-config/internal/connector"
	"github.com/MKhiriev/nats-conn-config/internal/connspec"
	"github.com/MKhiriev/nats-conn-config/internal/document"
	"github.com/MKhiriev/nats-conn-config/internal/logger"
	"github.com/MKhiriev/nats-conn-config/models"
)

type cli struct {
	buildInfo models.AppBuildInfo
	log       *logger.Logger
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "natsconf",
		Short:         "Resolve and test NATS connection documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(c.checkCmd(), c.connectCmd(), c.requestCmd(), c.versionCmd())
	return root
}

func (c *cli) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Resolve a connection document and print the redacted result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, cfg, err := c.setup(cmd)
			if err != nil {
				return err
			}

			_, err = a.Check(cmd.Context(), cfg.DocumentPath)
			return err
		},
	}
}

func (c *cli) connectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Resolve a connection document, connect to NATS and disconnect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, cfg, err := c.setup(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return a.Connect(ctx, cfg.DocumentPath, cfg.ConnectWait)
		},
	}
}

func (c *cli) requestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "request SUBJECT [DATA]",
		Short: "Connect to NATS, send one request and print the reply",
		Long: "Connect to NATS, send DATA on SUBJECT and print the reply payload.\n" +
			"The reply is awaited for the document's request_timeout.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cfg, err := c.setup(cmd)
			if err != nil {
				return err
			}

			var data []byte
			if len(args) == 2 {
				data = []byte(args[1])
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			reply, err := a.Request(ctx, cfg.DocumentPath, cfg.ConnectWait, args[0], data)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(reply))
			return err
		},
	}
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), c.buildInfo)
			return err
		},
	}
}

// setup loads the command settings, replaces the bootstrap logger with the
// configured one, attaches it to the command context and wires the
// application.
func (c *cli) setup(cmd *cobra.Command) (*app.App, *config.StructuredConfig, error) {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("error getting configs: %w", err)
	}

	c.log = logger.New("natsconf", cmd.ErrOrStderr(), cfg.Log.Format, cfg.Log.ZerologLevel()).
		WithStr("run_id", uuid.NewString())
	c.log.Debug().Any("config", cfg).Msg("received configs")

	loader := document.NewFileLoader(document.WithStrict(cfg.Strict))
	builder := connspec.NewBuilder(loader, c.log.WithStr("component", "connspec"))
	conn := connector.NewNATSConnector(c.log.WithStr("component", "connector"))

	cmd.SetContext(c.log.WithContext(cmd.Context()))

	return app.New(builder, conn), cfg, nil
}
