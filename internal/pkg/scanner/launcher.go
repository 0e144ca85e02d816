package scanner

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"sync"
)

var ErrAlreadyRunning = errors.New("scanner process is already running")

// Launcher starts the external QR scanner process (a camera-reading
// script that POSTs decoded badge codes back to the attendance
// endpoint). The scanner is an external collaborator; this only spawns
// and tracks the process.
type Launcher struct {
	command string
	args    []string

	mu      sync.Mutex
	running bool
}

func NewLauncher(command string, args ...string) *Launcher {
	return &Launcher{command: command, args: args}
}

// Start launches the scanner. Only one instance runs at a time.
func (l *Launcher) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return ErrAlreadyRunning
	}

	cmd := exec.Command(l.command, l.args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	l.running = true
	slog.Info("scanner process started", "command", l.command, "pid", cmd.Process.Pid)

	go func() {
		err := cmd.Wait()
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
		if err != nil {
			slog.Error("scanner process exited", "error", err)
			return
		}
		slog.Info("scanner process exited")
	}()

	return nil
}

func (l *Launcher) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}
