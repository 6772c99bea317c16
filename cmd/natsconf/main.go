package main

import (
	"os"

	"github.com/MKhiriev/nats-conn-config/internal/logger"
	"github.com/MKhiriev/nats-conn-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	c := &cli{
		buildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		log:       logger.NewLogger("natsconf"),
	}

	if err := c.rootCmd().Execute(); err != nil {
		c.log.Error().Err(err).Msg("natsconf failed")
		os.Exit(1)
	}
}
