package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/deploykit/deployctl/pkg/config"
)

func deployFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "build",
			Usage:       "Build the application image from the staged workspace",
			Destination: &cfg.Build,
		},
		&cli.BoolFlag{
			Name:        "push",
			Usage:       "Push the built image to the registry",
			Destination: &cfg.Push,
		},
		&cli.BoolFlag{
			Name:        "pack_helm",
			Usage:       "Package the chart into the workspace",
			Destination: &cfg.PackHelm,
		},
		&cli.BoolFlag{
			Name:        "push_helm",
			Usage:       "Upload the packaged chart to the chart repository",
			Destination: &cfg.PushHelm,
		},
		&cli.StringFlag{
			Name:        "registry",
			Usage:       "Address of the image registry",
			Value:       cfg.Registry,
			Destination: &cfg.Registry,
		},
		&cli.StringFlag{
			Name:        "docker_usr",
			Usage:       "Username for the image registry",
			Value:       cfg.RegistryUser,
			Destination: &cfg.RegistryUser,
		},
		&cli.StringFlag{
			Name:        "docker_psw",
			Usage:       "Password for the image registry",
			Value:       cfg.RegistryPassword,
			Destination: &cfg.RegistryPassword,
		},
		&cli.StringFlag{
			Name:        "tag",
			Usage:       "Tag applied to the built image",
			Value:       cfg.Tag,
			Destination: &cfg.Tag,
		},
		&cli.StringFlag{
			Name:        "helm_repo",
			Usage:       "Base URL of the chart repository",
			Value:       cfg.ChartRepo,
			Destination: &cfg.ChartRepo,
		},
		&cli.StringFlag{
			Name:        "helm_usr",
			Usage:       "Username for the chart repository",
			Value:       cfg.ChartRepoUser,
			Destination: &cfg.ChartRepoUser,
		},
		&cli.StringFlag{
			Name:        "helm_psw",
			Usage:       "Password for the chart repository",
			Value:       cfg.ChartRepoPassword,
			Destination: &cfg.ChartRepoPassword,
		},
	}
}
