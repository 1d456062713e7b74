package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/deploykit/deployctl/pkg/fileio"
)

const (
	// DirName is the transient directory created under the invocation
	// directory for assembling build inputs and packaged charts.
	DirName = "_build"

	chartOutputDirName = "charts"
)

// buildInputs is the fixed set of files staged from the image source
// directory into the workspace before an image build, preserving filenames.
var buildInputs = map[string]os.FileMode{
	"Dockerfile":    fileio.NonExecutablePerms,
	"entrypoint.sh": fileio.ExecutablePerms,
	"app.tar.gz":    fileio.NonExecutablePerms,
}

type Workspace struct {
	// Dir is the workspace directory for a single run. It is wiped at the
	// start of the run and intentionally left in place afterwards so the
	// staged inputs and tool logs can be inspected.
	Dir string
}

func New(root string) *Workspace {
	return &Workspace{Dir: filepath.Join(root, DirName)}
}

// Reset deletes any workspace left over from a previous run and creates a
// fresh, empty directory in its place.
func (w *Workspace) Reset() error {
	if err := os.RemoveAll(w.Dir); err != nil {
		return fmt.Errorf("removing workspace %q: %w", w.Dir, err)
	}

	if err := os.MkdirAll(w.Dir, os.ModePerm); err != nil {
		return fmt.Errorf("creating workspace %q: %w", w.Dir, err)
	}

	return nil
}

// StageBuildInputs copies the fixed image input set from sourceDir into the
// workspace so the build does not read from the invoking user's tree.
func (w *Workspace) StageBuildInputs(sourceDir string) error {
	for name, perms := range buildInputs {
		src := filepath.Join(sourceDir, name)
		dest := filepath.Join(w.Dir, name)

		if err := fileio.CopyFile(src, dest, perms); err != nil {
			return fmt.Errorf("staging build input %q: %w", name, err)
		}
	}

	return nil
}

// ChartOutputDir is the workspace subdirectory receiving packaged chart archives.
func (w *Workspace) ChartOutputDir() string {
	return filepath.Join(w.Dir, chartOutputDirName)
}

// ResetChartOutput deletes any previously packaged archives and recreates
// the chart output directory.
func (w *Workspace) ResetChartOutput() error {
	dir := w.ChartOutputDir()

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing chart output directory %q: %w", dir, err)
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("creating chart output directory %q: %w", dir, err)
	}

	return nil
}
