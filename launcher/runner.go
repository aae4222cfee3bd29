package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

const flatpakInfoPath = "/.flatpak-info"

// Runner spawns targets through the Wine runtime. It holds no mutable
// state after construction, so concurrent launches need no coordination.
type Runner struct {
	winePath  string
	inFlatpak bool
}

// InFlatpak reports whether the process runs inside a Flatpak sandbox
func InFlatpak() bool {
	_, err := os.Stat(flatpakInfoPath)
	return err == nil
}

// NewRunner resolves the Wine runtime. Inside Flatpak the launch goes
// through flatpak-spawn to the host, so no local wine lookup is done.
func NewRunner() (*Runner, error) {
	if InFlatpak() {
		return &Runner{winePath: "wine", inFlatpak: true}, nil
	}

	path, err := exec.LookPath("wine")
	if err != nil {
		return nil, ErrWineNotFound
	}

	return &Runner{winePath: path}, nil
}

// NewRunnerWithPath builds a Runner around an explicit runtime binary.
// Used by tests; the GUI and CLI always resolve from PATH.
func NewRunnerWithPath(winePath string, inFlatpak bool) *Runner {
	return &Runner{winePath: winePath, inFlatpak: inFlatpak}
}

// WinePath returns the resolved runtime binary
func (r *Runner) WinePath() string {
	return r.winePath
}

// commandLine builds the argv for a target. The target path is the sole
// Wine argument; no flags, no environment overrides.
func (r *Runner) commandLine(targetPath string) (string, []string) {
	if r.inFlatpak {
		return "flatpak-spawn", []string{"--host", "wine", targetPath}
	}
	return r.winePath, []string{targetPath}
}

func (r *Runner) buildCmd(ctx context.Context, target Target) *exec.Cmd {
	name, args := r.commandLine(target.Path)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = filepath.Dir(target.Path)
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = detachedProcAttr()

	return cmd
}

// Launch spawns exactly one detached Wine process for the target and
// returns as soon as process creation succeeds or fails. The child is
// reaped by a background goroutine.
func (r *Runner) Launch(ctx context.Context, target Target) (*Result, error) {
	cmd := r.buildCmd(ctx, target)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", filepath.Base(target.Path), err)
	}

	// Reap the child so it never lingers as a zombie
	go func() {
		_ = cmd.Wait()
	}()

	return &Result{
		Target:    target,
		PID:       cmd.Process.Pid,
		StartedAt: time.Now(),
	}, nil
}

// LaunchWait spawns the target and blocks until Wine exits, returning
// the exit code. Used by the CLI's -wait mode.
func (r *Runner) LaunchWait(ctx context.Context, target Target) (int, error) {
	cmd := r.buildCmd(ctx, target)

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("failed to start %s: %w", filepath.Base(target.Path), err)
	}

	err := cmd.Wait()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}

	return 0, nil
}
