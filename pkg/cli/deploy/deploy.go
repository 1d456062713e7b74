package deploy

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/deploykit/deployctl/pkg/config"
	"github.com/deploykit/deployctl/pkg/deployer"
	"github.com/deploykit/deployctl/pkg/helm"
	audit "github.com/deploykit/deployctl/pkg/log"
	"github.com/deploykit/deployctl/pkg/podman"
	"github.com/deploykit/deployctl/pkg/workspace"
)

const (
	// imageSourceDir holds the fixed image build input set.
	imageSourceDir = "deploy/image"
	// chartSourceDir holds the chart source packaged by the pack_helm action.
	chartSourceDir = "deploy/chart"

	logFilename     = "deployctl.log"
	checkLogMessage = "Please check the deployctl.log file under the workspace for more information."
)

// Run executes the requested actions against a freshly reset workspace.
func Run(ctx context.Context, cfg *config.Config) error {
	w := workspace.New(".")
	if err := w.Reset(); err != nil {
		audit.Auditf("The workspace directory '%s' could not be set up.", w.Dir)
		return err
	}

	// This needs to occur as early as possible so that the subsequent calls can use the log
	setupLogging(w.Dir)

	d := &deployer.Deployer{
		Config:         cfg,
		Workspace:      w,
		ImageSourceDir: imageSourceDir,
		ChartSourceDir: chartSourceDir,
		Charts:         helm.New(w.Dir),
	}

	if cfg.Build || cfg.Push {
		p, err := podman.New(w.Dir)
		if err != nil {
			audit.Audit("The Podman service could not be started.")
			audit.Audit(checkLogMessage)
			zap.S().Errorf("Starting podman service failed: %s", err)
			return err
		}

		d.Images = p
	}

	if err := d.Run(ctx); err != nil {
		audit.Audit(checkLogMessage)
		zap.S().Errorf("Deployment failed: %s", err)
		return err
	}

	return nil
}

func setupLogging(workspaceDir string) {
	logFilename := filepath.Join(workspaceDir, logFilename)

	logConfig := zap.NewProductionConfig()
	logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	logConfig.Encoding = "console"
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	logConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logConfig.OutputPaths = []string{logFilename}

	logger := zap.Must(logConfig.Build())

	// Set our configured logger to be accessed globally by zap.L()
	zap.ReplaceGlobals(logger)
}
