package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNoURL is returned when there is nothing to open
var ErrNoURL = errors.New("no url to open")

// Opener opens URLs, such as poster images, in an external viewer
type Opener struct {
	command string   // configured viewer command, empty for system default
	args    []string // additional arguments for the viewer
	logger  *slog.Logger

	// run starts cmd; replaced in tests
	run func(cmd *exec.Cmd) error
}

// NewOpener creates an Opener. An empty command uses the system default
// handler (open, xdg-open or start).
func NewOpener(command string, args []string, logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Opener{
		command: strings.TrimSpace(command),
		args:    args,
		logger:  logger,
		run:     func(cmd *exec.Cmd) error { return cmd.Start() },
	}
}

// Open opens url without waiting for the viewer to exit
func (o *Opener) Open(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrNoURL
	}

	cmd := o.buildCommand(url)
	o.logger.Info("opening url", "command", cmd.Path, "args", cmd.Args[1:])

	if err := o.run(cmd); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

// buildCommand builds the command for url
func (o *Opener) buildCommand(url string) *exec.Cmd {
	if o.command == "" {
		return defaultCommand(runtime.GOOS, url)
	}

	// On macOS, GUI apps that are not in PATH are launched with 'open -a'
	if runtime.GOOS == "darwin" {
		if _, err := exec.LookPath(o.command); err != nil {
			cmdArgs := []string{"-a", o.command}
			if len(o.args) > 0 {
				cmdArgs = append(cmdArgs, "--args")
				cmdArgs = append(cmdArgs, o.args...)
			}
			cmdArgs = append(cmdArgs, url)
			return exec.Command("open", cmdArgs...)
		}
	}

	args := append(append([]string{}, o.args...), url)
	return exec.Command(o.command, args...)
}

// defaultCommand opens url with the system default handler for goos
func defaultCommand(goos, url string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", url)
	case "windows":
		return exec.Command("cmd", "/c", "start", "", url)
	default:
		// Linux and other Unix-like systems
		return exec.Command("xdg-open", url)
	}
}
