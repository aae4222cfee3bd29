// Package launcher resolves the Wine runtime and spawns Windows
// executables through it.
package launcher

import (
	"errors"
	"time"
)

// TargetKind classifies what the user picked
type TargetKind string

const (
	KindExecutable TargetKind = "executable" // .exe
	KindInstaller  TargetKind = "installer"  // .msi
	KindBatch      TargetKind = "batch"      // .bat, .cmd
	KindArchive    TargetKind = "archive"    // .zip
	KindUnknown    TargetKind = "unknown"
)

// Target is the user-selected file to run through Wine.
// It lives only for the UI session; only the most recent selection matters.
type Target struct {
	Path string
	Kind TargetKind
	Size int64
}

// LaunchState represents the lifecycle of a single launch
type LaunchState string

const (
	StateIdle      LaunchState = "idle"
	StateLaunching LaunchState = "launching"
	StateRunning   LaunchState = "running"
	StateFailed    LaunchState = "failed"
	StateExited    LaunchState = "exited"
)

// Result describes a successful process spawn
type Result struct {
	Target    Target
	PID       int
	StartedAt time.Time
}

// Record is one entry of the launch history
type Record struct {
	Path      string    `json:"path"`
	StartedAt time.Time `json:"started_at"`
	PID       int       `json:"pid,omitempty"`
	OK        bool      `json:"ok"`
	Error     string    `json:"error,omitempty"`
}

// Sentinel errors surfaced to the user
var (
	// ErrNoTarget means launch was requested without a prior selection
	ErrNoTarget = errors.New("no target selected")

	// ErrWineNotFound means the Wine runtime is not on PATH
	ErrWineNotFound = errors.New("wine not found in PATH")

	// ErrNotAFile means the selected path is a directory
	ErrNotAFile = errors.New("selected path is not a regular file")
)
