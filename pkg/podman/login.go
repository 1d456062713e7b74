package podman

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/deploykit/deployctl/pkg/fileio"
	"go.uber.org/zap"
)

const (
	loginLogFileName = "podman-login.log"

	outputFileFlags = os.O_APPEND | os.O_CREATE | os.O_WRONLY
)

// Login authenticates podman against the given registry so that
// subsequent pushes are authorized. The password is fed over stdin to
// keep it out of the process list and the log file.
func (p *Podman) Login(server, username, password string) error {
	zap.S().Infof("Logging in to registry %s...", server)

	logFile := filepath.Join(p.out, loginLogFileName)

	file, err := os.OpenFile(logFile, outputFileFlags, fileio.NonExecutablePerms)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer func() {
		if err = file.Close(); err != nil {
			zap.S().Warnf("Closing %s file failed: %s", logFile, err)
		}
	}()

	cmd := loginCommand(server, username, strings.NewReader(password), file)

	if _, err = fmt.Fprintf(file, "command: %s\n", cmd); err != nil {
		return fmt.Errorf("writing command prefix to log file: %w", err)
	}

	return cmd.Run()
}

func loginCommand(server, username string, password io.Reader, output io.Writer) *exec.Cmd {
	args := []string{"login", server, "--username", username, "--password-stdin"}

	cmd := exec.Command(podmanExec, args...)
	cmd.Stdin = password
	cmd.Stdout = output
	cmd.Stderr = output

	return cmd
}
