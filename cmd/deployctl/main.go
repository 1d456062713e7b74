package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/deploykit/deployctl/pkg/cli/cmd"
	"github.com/deploykit/deployctl/pkg/cli/deploy"
	"github.com/deploykit/deployctl/pkg/config"
	audit "github.com/deploykit/deployctl/pkg/log"
)

func main() {
	cfg, err := config.DefaultFromEnv()
	if err != nil {
		audit.Auditf("Error: %s", err)
		os.Exit(1)
	}

	app := cmd.NewApp(cfg, func(ctx *cli.Context) error {
		return deploy.Run(ctx.Context, cfg)
	})

	if err = app.Run(os.Args); err != nil {
		audit.Auditf("Error: %s", err)
		os.Exit(1)
	}
}
