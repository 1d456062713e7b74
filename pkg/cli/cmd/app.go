package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/deploykit/deployctl/pkg/config"
	"github.com/deploykit/deployctl/pkg/version"
)

var appName = filepath.Base(os.Args[0])

// NewApp assembles the deployctl command line. Environment-sourced
// defaults are taken from cfg; flags passed on the command line
// overwrite the corresponding fields in place, so once Run is entered
// cfg holds the final configuration.
func NewApp(cfg *config.Config, action cli.ActionFunc) *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "Build and deploy the application image and chart"
	app.UsageText = fmt.Sprintf("%s [OPTIONS]", appName)
	app.Version = version.GetVersion()
	app.Flags = deployFlags(cfg)
	app.Action = func(ctx *cli.Context) error {
		if ctx.NArg() > 0 {
			_ = cli.ShowAppHelp(ctx)
			return fmt.Errorf("unknown argument: %q", ctx.Args().First())
		}

		if ctx.NumFlags() == 0 {
			_ = cli.ShowAppHelp(ctx)
			return errors.New("no options provided")
		}

		return action(ctx)
	}

	return app
}
