package helm

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/deploykit/deployctl/pkg/fileio"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	packageLogFileName = "helm-package.log"
	chartFileName      = "Chart.yaml"

	outputFileFlags = os.O_APPEND | os.O_CREATE | os.O_WRONLY
)

type Helm struct {
	outputDir string
}

func New(outputDir string) *Helm {
	return &Helm{
		outputDir: outputDir,
	}
}

// Package runs "helm package" against the chart source in chartDir,
// writing the produced archive into destDir.
func (h *Helm) Package(chartDir, destDir string) error {
	logFile := filepath.Join(h.outputDir, packageLogFileName)

	file, err := os.OpenFile(logFile, outputFileFlags, fileio.NonExecutablePerms)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer func() {
		if err = file.Close(); err != nil {
			zap.S().Warnf("Closing %s file failed: %s", logFile, err)
		}
	}()

	cmd := packageCommand(chartDir, destDir, file)

	if _, err = fmt.Fprintf(file, "command: %s\n", cmd); err != nil {
		return fmt.Errorf("writing command prefix to log file: %w", err)
	}

	return cmd.Run()
}

func packageCommand(chartDir, destDir string, output io.Writer) *exec.Cmd {
	var args []string
	args = append(args, "package", chartDir)

	if destDir != "" {
		args = append(args, "--destination", destDir)
	}

	cmd := exec.Command("helm", args...)
	cmd.Stdout = output
	cmd.Stderr = output

	return cmd
}

// chartMetadata is the subset of Chart.yaml needed to locate a packaged archive.
type chartMetadata struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// ChartName reads the chart name declared in the Chart.yaml inside chartDir.
func ChartName(chartDir string) (string, error) {
	b, err := os.ReadFile(filepath.Join(chartDir, chartFileName))
	if err != nil {
		return "", fmt.Errorf("reading chart metadata: %w", err)
	}

	var metadata chartMetadata
	if err = yaml.Unmarshal(b, &metadata); err != nil {
		return "", fmt.Errorf("decoding chart metadata: %w", err)
	}

	if metadata.Name == "" {
		return "", fmt.Errorf("chart in %q does not declare a name", chartDir)
	}

	return metadata.Name, nil
}

// FindArchive locates the packaged archive for the named chart inside destDir.
// Anything other than exactly one match is an error; packaging is never
// triggered implicitly.
func FindArchive(destDir, chart string) (string, error) {
	pattern := filepath.Join(destDir, fmt.Sprintf("%s-*.tgz", chart))

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("looking for chart archive with pattern %s: %w", pattern, err)
	} else if len(matches) != 1 {
		return "", fmt.Errorf("unable to locate packaged chart: %s", chart)
	}

	return matches[0], nil
}
