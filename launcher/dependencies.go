package launcher

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// DependencyStatus represents the status of a single external dependency
type DependencyStatus struct {
	Name        string `json:"name"`
	Available   bool   `json:"available"`
	Version     string `json:"version,omitempty"`
	Path        string `json:"path,omitempty"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
	InstallHint string `json:"install_hint"`
}

// DependencyChecker probes the host for the Wine runtime and its helpers
type DependencyChecker struct {
	results map[string]*DependencyStatus
}

// NewDependencyChecker creates a new dependency checker
func NewDependencyChecker() *DependencyChecker {
	return &DependencyChecker{
		results: make(map[string]*DependencyStatus),
	}
}

// CheckAll checks all dependencies and returns their statuses
func (dc *DependencyChecker) CheckAll() map[string]*DependencyStatus {
	dc.checkWine()
	dc.checkWinetricks()
	dc.checkFlatpakSpawn()
	return dc.results
}

// checkWine checks if the Wine runtime is on PATH.
// Inside Flatpak the host's wine is not observable from the sandbox, so
// the check reports available and defers to flatpak-spawn at launch time.
func (dc *DependencyChecker) checkWine() {
	status := &DependencyStatus{
		Name:        "Wine",
		Required:    true,
		Description: "Runs Windows executables on this system",
		InstallHint: dc.getWineInstallHint(),
	}

	if InFlatpak() {
		status.Available = true
		status.Version = "host wine (via flatpak-spawn)"
		dc.results["wine"] = status
		return
	}

	path, err := exec.LookPath("wine")
	if err == nil {
		status.Available = true
		status.Path = path
		// Try to get version
		cmd := exec.Command(path, "--version")
		output, err := cmd.Output()
		if err == nil {
			status.Version = strings.TrimSpace(string(output))
		}
	}

	dc.results["wine"] = status
}

// checkWinetricks checks for the winetricks helper script
func (dc *DependencyChecker) checkWinetricks() {
	status := &DependencyStatus{
		Name:        "Winetricks",
		Required:    false,
		Description: "Installs common Windows runtime libraries into Wine",
		InstallHint: dc.getWinetricksInstallHint(),
	}

	path, err := exec.LookPath("winetricks")
	if err == nil {
		status.Available = true
		status.Path = path
		cmd := exec.Command(path, "--version")
		output, err := cmd.Output()
		if err == nil {
			lines := strings.Split(string(output), "\n")
			if len(lines) > 0 {
				status.Version = strings.TrimSpace(lines[0])
			}
		}
	}

	dc.results["winetricks"] = status
}

// checkFlatpakSpawn checks for the sandbox escape helper; only relevant
// when running as a Flatpak.
func (dc *DependencyChecker) checkFlatpakSpawn() {
	status := &DependencyStatus{
		Name:        "flatpak-spawn",
		Required:    InFlatpak(),
		Description: "Launches the host's wine from inside the Flatpak sandbox",
		InstallHint: "Part of the Flatpak runtime; rebuild the Flatpak with --talk-name=org.freedesktop.Flatpak",
	}

	path, err := exec.LookPath("flatpak-spawn")
	if err == nil {
		status.Available = true
		status.Path = path
	}

	dc.results["flatpak-spawn"] = status
}

// getWineInstallHint returns platform-specific install instructions
func (dc *DependencyChecker) getWineInstallHint() string {
	switch runtime.GOOS {
	case "darwin":
		return "brew install --cask wine-stable"
	case "linux":
		return "sudo apt install wine"
	case "windows":
		return "Wine is not needed on Windows; run the executable directly"
	default:
		return "Install Wine for your system: https://www.winehq.org/"
	}
}

// getWinetricksInstallHint returns platform-specific install instructions
func (dc *DependencyChecker) getWinetricksInstallHint() string {
	switch runtime.GOOS {
	case "darwin":
		return "brew install winetricks"
	case "linux":
		return "sudo apt install winetricks"
	default:
		return "Install Winetricks for your system"
	}
}

// IsWineAvailable returns true if the Wine runtime can be launched
func (dc *DependencyChecker) IsWineAvailable() bool {
	if dc.results["wine"] == nil {
		dc.checkWine()
	}
	return dc.results["wine"].Available
}

// IsWinetricksAvailable returns true if winetricks is on PATH
func (dc *DependencyChecker) IsWinetricksAvailable() bool {
	if dc.results["winetricks"] == nil {
		dc.checkWinetricks()
	}
	return dc.results["winetricks"].Available
}

// GetMissingDependencies returns a list of dependencies that are not available
func (dc *DependencyChecker) GetMissingDependencies() []*DependencyStatus {
	var missing []*DependencyStatus
	for _, status := range dc.results {
		if !status.Available {
			missing = append(missing, status)
		}
	}
	return missing
}

// FormatStatusReport returns a formatted string with dependency statuses
func (dc *DependencyChecker) FormatStatusReport() string {
	var sb strings.Builder
	sb.WriteString("Runtime status:\n\n")

	for _, status := range dc.results {
		if status.Available {
			sb.WriteString(fmt.Sprintf("✅ %s", status.Name))
			if status.Version != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", status.Version))
			}
			sb.WriteString("\n")
		} else {
			sb.WriteString(fmt.Sprintf("❌ %s - not installed\n", status.Name))
			sb.WriteString(fmt.Sprintf("   %s\n", status.InstallHint))
		}
	}

	return sb.String()
}

// FormatMissingWarning returns a warning message about missing dependencies
func (dc *DependencyChecker) FormatMissingWarning() string {
	missing := dc.GetMissingDependencies()
	if len(missing) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Missing dependencies:\n")
	for _, status := range missing {
		sb.WriteString(fmt.Sprintf("   • %s: %s\n", status.Name, status.Description))
		sb.WriteString(fmt.Sprintf("     %s\n", status.InstallHint))
	}
	return sb.String()
}
