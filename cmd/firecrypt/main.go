package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-fire-crypt/cmd/firecrypt/commands"
	"github.com/MKhiriev/go-fire-crypt/internal/app"
	"github.com/MKhiriev/go-fire-crypt/internal/logger"
	"github.com/MKhiriev/go-fire-crypt/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := commands.Execute(ctx, os.Args[1:], build, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log := logger.NewLogger("firecrypt")
		stop()
		log.Fatal().Err(err).Msg(app.Describe(err))
	}
}
