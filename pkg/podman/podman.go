package podman

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/containers/buildah/define"
	"github.com/containers/podman/v4/pkg/bindings"
	"github.com/containers/podman/v4/pkg/bindings/images"
	"github.com/containers/podman/v4/pkg/domain/entities"
	"go.uber.org/zap"
)

const (
	podmanSocketURI  = "unix://%s"
	dockerfile       = "Dockerfile"
	buildLogFileName = "podman-image-build.log"
)

type Podman struct {
	context context.Context
	out     string
}

// New sets up a podman listening service and returns a connected podman client.
//
// Parameters:
//   - out - location for podman to output any logs created as a result of podman commands
func New(out string) (*Podman, error) {
	if err := setupAPIListener(out); err != nil {
		return nil, fmt.Errorf("creating new podman instance: %w", err)
	}

	conn, err := bindings.NewConnection(context.Background(), fmt.Sprintf(podmanSocketURI, podmanSocketPath))
	if err != nil {
		return nil, fmt.Errorf("creating new podman connection: %w", err)
	}

	return &Podman{
		context: conn,
		out:     out,
	}, nil
}

// Build looks for a 'Dockerfile' in the given context directory and builds
// an image from it, tagged with ref.
func (p *Podman) Build(contextDir, ref string) error {
	zap.S().Infof("Building image %s...", ref)

	logFile, err := os.Create(filepath.Join(p.out, buildLogFileName))
	if err != nil {
		return fmt.Errorf("generating podman build log file: %w", err)
	}
	defer func() {
		_ = logFile.Close()
	}()

	eOpts := entities.BuildOptions{
		BuildOptions: define.BuildOptions{
			ContextDirectory: contextDir,
			Output:           ref,
			Out:              logFile,
			Err:              logFile,
		},
	}

	if _, err = images.Build(p.context, []string{dockerfile}, eOpts); err != nil {
		return fmt.Errorf("building image %s from context %s: %w", ref, contextDir, err)
	}

	return nil
}

// Push uploads a previously built image to its registry. Registry
// credentials are expected to be established beforehand via Login.
func (p *Podman) Push(ref string) error {
	zap.S().Infof("Pushing image %s...", ref)

	if err := images.Push(p.context, ref, ref, &images.PushOptions{}); err != nil {
		return fmt.Errorf("pushing image %s: %w", ref, err)
	}

	return nil
}
