// Package controller provides the bridge between the UI and the launch logic
package controller

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/linuxpengueni/wui/launcher"
)

// LaunchController manages launch operations and provides callbacks for UI updates
type LaunchController struct {
	config *AppConfig

	// Callbacks
	onLog         func(LogLevel, string)
	onStateChange func(launcher.LaunchState)
	onLaunched    func(*launcher.Record)

	// State
	mu      sync.RWMutex
	runner  *launcher.Runner
	history []*launcher.Record
}

// LogLevel represents log message severity
type LogLevel int

const (
	LogInfo LogLevel = iota
	LogWarning
	LogError
)

// NewLaunchController creates a new launch controller
func NewLaunchController() *LaunchController {
	ctrl := &LaunchController{
		config: LoadConfig(),
	}

	// Load persisted launch history
	ctrl.loadHistory()

	return ctrl
}

// SetOnLog sets the callback for log messages
func (lc *LaunchController) SetOnLog(callback func(LogLevel, string)) {
	lc.onLog = callback
}

// SetOnStateChange sets the callback for launch state changes
func (lc *LaunchController) SetOnStateChange(callback func(launcher.LaunchState)) {
	lc.onStateChange = callback
}

// SetOnLaunched sets the callback invoked after every launch attempt,
// successful or not
func (lc *LaunchController) SetOnLaunched(callback func(*launcher.Record)) {
	lc.onLaunched = callback
}

// GetConfig returns the current configuration
func (lc *LaunchController) GetConfig() *AppConfig {
	return lc.config
}

// UpdateConfig updates and saves configuration
func (lc *LaunchController) UpdateConfig(config *AppConfig) error {
	lc.config = config
	return SaveConfig(config)
}

// CheckRuntime probes the host for Wine and its helpers
func (lc *LaunchController) CheckRuntime() *launcher.DependencyChecker {
	checker := launcher.NewDependencyChecker()
	checker.CheckAll()
	return checker
}

// ensureRunner lazily resolves the Wine runtime
func (lc *LaunchController) ensureRunner() (*launcher.Runner, error) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if lc.runner != nil {
		return lc.runner, nil
	}

	runner, err := launcher.NewRunner()
	if err != nil {
		return nil, err
	}

	lc.runner = runner
	return runner, nil
}

// Launch validates the path and spawns it through Wine on a background
// goroutine. The result is delivered through the OnLaunched callback;
// validation failures (empty path, missing file) are returned
// synchronously so the UI can refuse before any spawn is attempted.
func (lc *LaunchController) Launch(path string) error {
	target, err := launcher.Validate(path)
	if err != nil {
		return err
	}

	if lc.onStateChange != nil {
		lc.onStateChange(launcher.StateLaunching)
	}
	lc.log(LogInfo, "Launching: "+filepath.Base(target.Path))

	go func() {
		runner, err := lc.ensureRunner()

		var result *launcher.Result
		if err == nil {
			result, err = runner.Launch(context.Background(), target)
		}

		record := &launcher.Record{
			Path:      target.Path,
			StartedAt: time.Now(),
		}

		if err != nil {
			record.OK = false
			record.Error = err.Error()
			lc.log(LogError, "Launch failed: "+err.Error())
			if lc.onStateChange != nil {
				lc.onStateChange(launcher.StateFailed)
			}
		} else {
			record.OK = true
			record.PID = result.PID
			record.StartedAt = result.StartedAt
			lc.log(LogInfo, "Running: "+filepath.Base(target.Path))
			if lc.onStateChange != nil {
				lc.onStateChange(launcher.StateRunning)
			}
		}

		lc.addRecord(record)

		if lc.onLaunched != nil {
			lc.onLaunched(record)
		}
	}()

	return nil
}

// ExtractArchive unpacks a zip target into a temp directory and returns
// the runnable files it contained
func (lc *LaunchController) ExtractArchive(path, password string) (*launcher.ExtractResult, error) {
	lc.log(LogInfo, "Extracting archive: "+filepath.Base(path))

	result, err := launcher.ExtractToTemp(path, password)
	if err != nil {
		lc.log(LogError, "Extraction failed: "+err.Error())
		return nil, err
	}

	lc.log(LogInfo, "Extracted "+filepath.Base(path)+" ("+FormatFileSize(result.BytesTotal)+")")
	return result, nil
}

// ListArchive lists runnable entries of a zip without extracting
func (lc *LaunchController) ListArchive(path string) ([]launcher.ArchiveEntry, error) {
	return launcher.ListExecutables(path)
}

// RememberTarget records a confirmed selection in the recent list
func (lc *LaunchController) RememberTarget(path string) {
	lc.config.AddRecentTarget(path)
	_ = SaveConfig(lc.config)
}

// History returns a copy of the launch history, most recent first
func (lc *LaunchController) History() []*launcher.Record {
	lc.mu.RLock()
	defer lc.mu.RUnlock()

	out := make([]*launcher.Record, len(lc.history))
	copy(out, lc.history)
	return out
}

// ClearHistory drops all history records
func (lc *LaunchController) ClearHistory() {
	lc.mu.Lock()
	lc.history = nil
	lc.mu.Unlock()
	lc.saveHistory()
}

// addRecord prepends a record and trims to the configured limit
func (lc *LaunchController) addRecord(record *launcher.Record) {
	lc.mu.Lock()
	lc.history = append([]*launcher.Record{record}, lc.history...)

	limit := lc.config.HistoryLimit
	if limit > 0 && len(lc.history) > limit {
		lc.history = lc.history[:limit]
	}
	lc.mu.Unlock()

	lc.saveHistory()
}

// log emits a log message
func (lc *LaunchController) log(level LogLevel, message string) {
	if lc.onLog != nil {
		lc.onLog(level, message)
	}
}

// historyData represents the persisted launch history
type historyData struct {
	Records   []*launcher.Record `json:"records"`
	UpdatedAt string             `json:"updated_at"`
}

// saveHistory persists the launch history to disk
func (lc *LaunchController) saveHistory() {
	lc.mu.RLock()
	data := historyData{
		Records:   lc.history,
		UpdatedAt: time.Now().Format(time.RFC3339),
	}
	lc.mu.RUnlock()

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return
	}

	historyFile := filepath.Join(getConfigDir(), "launch_history.json")
	_ = os.WriteFile(historyFile, jsonData, 0644)
}

// loadHistory loads the launch history from disk
func (lc *LaunchController) loadHistory() {
	historyFile := filepath.Join(getConfigDir(), "launch_history.json")

	jsonData, err := os.ReadFile(historyFile)
	if err != nil {
		return
	}

	var data historyData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return
	}

	lc.history = data.Records
}
