package deployer

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/deploykit/deployctl/pkg/config"
	"github.com/deploykit/deployctl/pkg/helm"
	audit "github.com/deploykit/deployctl/pkg/log"
	"github.com/deploykit/deployctl/pkg/workspace"
	"go.uber.org/zap"
)

const (
	buildAction     = "build image"
	pushAction      = "push image"
	packAction      = "package chart"
	pushChartAction = "push chart"
)

type imageService interface {
	Build(contextDir, ref string) error
	Login(server, username, password string) error
	Push(ref string) error
}

type chartService interface {
	Package(chartDir, destDir string) error
	Upload(ctx context.Context, repoURL, username, password, archive string) error
}

// Deployer runs the requested deployment actions in a fixed order,
// stopping at the first failure. Actions that were not requested are
// skipped entirely.
type Deployer struct {
	Config    *config.Config
	Workspace *workspace.Workspace

	// ImageSourceDir holds the fixed image build input set.
	ImageSourceDir string
	// ChartSourceDir holds the chart source packaged by the pack action.
	ChartSourceDir string

	// Images is only set when the build or push actions are requested.
	Images imageService
	Charts chartService
}

func (d *Deployer) Run(ctx context.Context) error {
	if d.Config.Build {
		if err := d.buildImage(); err != nil {
			audit.AuditActionFailed(buildAction)
			return err
		}
		audit.AuditActionSuccessful(buildAction)
	}

	if d.Config.Push {
		if err := d.pushImage(); err != nil {
			audit.AuditActionFailed(pushAction)
			return err
		}
		audit.AuditActionSuccessful(pushAction)
	}

	if d.Config.PackHelm {
		if err := d.packChart(); err != nil {
			audit.AuditActionFailed(packAction)
			return err
		}
		audit.AuditActionSuccessful(packAction)
	}

	if d.Config.PushHelm {
		if err := d.pushChart(ctx); err != nil {
			audit.AuditActionFailed(pushChartAction)
			return err
		}
		audit.AuditActionSuccessful(pushChartAction)
	}

	return nil
}

func (d *Deployer) buildImage() error {
	if err := d.Workspace.StageBuildInputs(d.ImageSourceDir); err != nil {
		return fmt.Errorf("staging build inputs: %w", err)
	}

	ref := d.Config.ImageReference()
	if err := d.Images.Build(d.Workspace.Dir, ref); err != nil {
		return fmt.Errorf("building image %s: %w", ref, err)
	}

	return nil
}

func (d *Deployer) pushImage() error {
	if d.Config.Registry == "" {
		zap.S().Info("No registry configured, skipping login")
	} else {
		if err := d.Config.ValidateRegistryAuth(); err != nil {
			return err
		}

		if err := d.Images.Login(d.Config.Registry, d.Config.RegistryUser, d.Config.RegistryPassword); err != nil {
			return fmt.Errorf("logging in to registry %s: %w", d.Config.Registry, err)
		}
	}

	ref := d.Config.ImageReference()
	if err := d.Images.Push(ref); err != nil {
		return fmt.Errorf("pushing image %s: %w", ref, err)
	}

	return nil
}

func (d *Deployer) packChart() error {
	if err := d.Workspace.ResetChartOutput(); err != nil {
		return fmt.Errorf("preparing chart output directory: %w", err)
	}

	if err := d.Charts.Package(d.ChartSourceDir, d.Workspace.ChartOutputDir()); err != nil {
		return fmt.Errorf("packaging chart from %s: %w", d.ChartSourceDir, err)
	}

	return nil
}

func (d *Deployer) pushChart(ctx context.Context) error {
	name, err := helm.ChartName(d.ChartSourceDir)
	if err != nil {
		return err
	}

	archive, err := helm.FindArchive(d.Workspace.ChartOutputDir(), name)
	if err != nil {
		return err
	}

	cfg := d.Config
	if err = d.Charts.Upload(ctx, cfg.ChartRepo, cfg.ChartRepoUser, cfg.ChartRepoPassword, archive); err != nil {
		return fmt.Errorf("uploading chart archive %s: %w", filepath.Base(archive), err)
	}

	return nil
}
