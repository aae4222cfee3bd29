package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/linuxpengueni/wui/gui/controller"
	"github.com/linuxpengueni/wui/launcher"
)

// LauncherGUI represents the GUI application
type LauncherGUI struct {
	app    fyne.App
	window fyne.Window
	ctrl   *controller.LaunchController

	// Input fields
	pathEntry    *widget.Entry
	recentSelect *widget.Select

	// Buttons
	browseButton *widget.Button
	launchButton *widget.Button
	statusButton *widget.Button

	// Status
	statusLabel *widget.Label

	// History
	historyList  *widget.List
	historyData  []*launcher.Record
	historyMutex sync.RWMutex
}

// NewLauncherGUI creates a new GUI instance
func NewLauncherGUI() *LauncherGUI {
	a := app.NewWithID("io.github.linuxpengueni.wui")

	ctrl := controller.NewLaunchController()
	cfg := ctrl.GetConfig()

	w := a.NewWindow("WUI - Wine User Interface")
	w.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	w.CenterOnScreen()

	sg := &LauncherGUI{
		app:         a,
		window:      w,
		ctrl:        ctrl,
		historyData: ctrl.History(),
	}

	ctrl.SetOnLog(func(level controller.LogLevel, msg string) {
		fyne.Do(func() {
			sg.statusLabel.SetText(msg)
		})
	})
	ctrl.SetOnLaunched(sg.onLaunched)

	sg.buildUI()
	sg.checkWineInstallation()
	return sg
}

func (sg *LauncherGUI) buildUI() {
	// === HEADER ===
	titleText := canvas.NewText("Wine Runner", theme.Color(theme.ColorNameForeground))
	titleText.TextSize = 24
	titleText.TextStyle.Bold = true

	subtitleText := canvas.NewText("Select a Windows executable (.exe) to run seamlessly on Linux", theme.Color(theme.ColorNameForeground))
	subtitleText.TextSize = 14

	sg.statusButton = widget.NewButton("🍷 Runtime Status", sg.showRuntimeStatus)
	sg.statusButton.Importance = widget.LowImportance

	helpButton := widget.NewButton("❓ Help", sg.showHelp)
	helpButton.Importance = widget.LowImportance

	header := container.NewBorder(
		nil, nil,
		container.NewVBox(titleText, subtitleText),
		container.NewHBox(sg.statusButton, helpButton),
	)

	// === TARGET PANEL ===
	targetPanel := sg.buildTargetPanel()

	// === HISTORY PANEL ===
	historyPanel := sg.buildHistoryPanel()

	content := container.NewBorder(
		container.NewVBox(container.NewPadded(header), widget.NewSeparator()),
		nil, nil, nil,
		container.NewVSplit(targetPanel, historyPanel),
	)

	sg.window.SetContent(content)
}

func (sg *LauncherGUI) buildTargetPanel() fyne.CanvasObject {
	pathLabel := widget.NewLabelWithStyle("Executable Path", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	sg.pathEntry = widget.NewEntry()
	sg.pathEntry.SetPlaceHolder("Select .exe file...")

	sg.browseButton = widget.NewButton("📂 Browse", sg.onBrowse)
	sg.browseButton.Importance = widget.MediumImportance

	pathRow := container.NewBorder(nil, nil, nil, sg.browseButton, sg.pathEntry)

	// Recent targets dropdown; picking one replaces the current selection
	sg.recentSelect = widget.NewSelect(sg.ctrl.GetConfig().RecentTargets, func(s string) {
		if s != "" {
			sg.setTarget(s)
		}
	})
	sg.recentSelect.PlaceHolder = "Recent targets..."

	sg.statusLabel = widget.NewLabel("Ready")
	sg.statusLabel.TextStyle.Italic = true

	sg.launchButton = widget.NewButton("🚀 Launch Application", sg.onLaunch)
	sg.launchButton.Importance = widget.HighImportance

	launchRow := container.NewHBox(layout.NewSpacer(), sg.launchButton)

	targetSection := container.NewVBox(
		pathLabel,
		pathRow,
		sg.recentSelect,
		sg.statusLabel,
		widget.NewSeparator(),
		launchRow,
	)

	return container.NewPadded(targetSection)
}

func (sg *LauncherGUI) buildHistoryPanel() fyne.CanvasObject {
	historyLabel := widget.NewLabelWithStyle("📜 Launch History", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	clearButton := widget.NewButton("Clear", func() {
		sg.ctrl.ClearHistory()
		sg.reloadHistory()
	})
	clearButton.Importance = widget.LowImportance

	sg.historyList = widget.NewList(
		func() int {
			sg.historyMutex.RLock()
			defer sg.historyMutex.RUnlock()
			return len(sg.historyData)
		},
		func() fyne.CanvasObject {
			name := widget.NewLabel("application.exe")
			name.TextStyle.Bold = true
			name.Truncation = fyne.TextTruncateEllipsis
			detail := widget.NewLabel("time and result")
			detail.Truncation = fyne.TextTruncateEllipsis
			return container.NewVBox(name, detail)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			sg.updateHistoryItem(id, obj)
		},
	)

	sg.historyList.OnSelected = func(id widget.ListItemID) {
		sg.historyMutex.RLock()
		var path string
		if id < len(sg.historyData) {
			path = sg.historyData[id].Path
		}
		sg.historyMutex.RUnlock()

		if path != "" {
			sg.setTarget(path)
		}
		sg.historyList.UnselectAll()
	}

	header := container.NewBorder(nil, nil, historyLabel, clearButton)

	return container.NewPadded(container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()),
		nil, nil, nil,
		sg.historyList,
	))
}

func (sg *LauncherGUI) updateHistoryItem(id widget.ListItemID, obj fyne.CanvasObject) {
	sg.historyMutex.RLock()
	if id >= len(sg.historyData) {
		sg.historyMutex.RUnlock()
		return
	}
	record := sg.historyData[id]
	sg.historyMutex.RUnlock()

	vbox := obj.(*fyne.Container)
	nameLabel := vbox.Objects[0].(*widget.Label)
	detailLabel := vbox.Objects[1].(*widget.Label)

	nameLabel.SetText(historyTitle(record))
	detailLabel.SetText(historyDetail(record))
}

// historyTitle formats the first line of a history entry
func historyTitle(record *launcher.Record) string {
	icon := "✅"
	if !record.OK {
		icon = "❌"
	}
	return fmt.Sprintf("%s %s", icon, filepath.Base(record.Path))
}

// historyDetail formats the second line of a history entry
func historyDetail(record *launcher.Record) string {
	when := record.StartedAt.Format("2006-01-02 15:04")
	if !record.OK {
		return fmt.Sprintf("%s · %s", when, record.Error)
	}
	return fmt.Sprintf("%s · PID %d", when, record.PID)
}

// setTarget replaces the current selection and updates the status line
func (sg *LauncherGUI) setTarget(path string) {
	sg.pathEntry.SetText(path)
	sg.statusLabel.SetText(fmt.Sprintf("Ready to launch: %s", filepath.Base(path)))

	cfg := sg.ctrl.GetConfig()
	cfg.DefaultBrowseDir = filepath.Dir(path)
	_ = sg.ctrl.UpdateConfig(cfg)
}

func (sg *LauncherGUI) onBrowse() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, sg.window)
			return
		}
		// Cancelled: the previous selection stays untouched
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		sg.setTarget(path)
	}, sg.window)

	fd.SetFilter(storage.NewExtensionFileFilter([]string{".exe", ".msi", ".bat", ".cmd", ".zip"}))

	if lister, err := storage.ListerForURI(storage.NewFileURI(sg.ctrl.GetConfig().DefaultBrowseDir)); err == nil {
		fd.SetLocation(lister)
	}

	fd.Show()
}

func (sg *LauncherGUI) onLaunch() {
	path := strings.TrimSpace(sg.pathEntry.Text)
	if path == "" {
		dialog.ShowError(fmt.Errorf("no target selected - please select an executable file first"), sg.window)
		return
	}

	target, err := launcher.Validate(path)
	if err != nil {
		dialog.ShowError(err, sg.window)
		return
	}

	if target.Kind == launcher.KindArchive {
		sg.onLaunchArchive(target.Path)
		return
	}

	// An .exe without the MZ magic will not run under Wine; warn, don't refuse
	if target.Kind == launcher.KindExecutable && sg.ctrl.GetConfig().ConfirmSuspicious {
		hasPE, peErr := launcher.HasPEHeader(target.Path)
		if peErr == nil && !hasPE {
			dialog.ShowConfirm("Not a Windows executable?",
				fmt.Sprintf("%s does not look like a Windows executable.\nLaunch it anyway?", filepath.Base(target.Path)),
				func(confirm bool) {
					if confirm {
						sg.launch(target.Path)
					}
				}, sg.window)
			return
		}
	}

	sg.launch(target.Path)
}

// launch hands the path to the controller; the spawn happens on a
// background goroutine and the result comes back via onLaunched.
func (sg *LauncherGUI) launch(path string) {
	sg.statusLabel.SetText(fmt.Sprintf("Launching: %s...", filepath.Base(path)))

	if err := sg.ctrl.Launch(path); err != nil {
		dialog.ShowError(err, sg.window)
		sg.statusLabel.SetText("❌ Launch refused")
	}
}

// onLaunched is called from the controller's goroutine after every attempt
func (sg *LauncherGUI) onLaunched(record *launcher.Record) {
	sg.reloadHistory()

	cfg := sg.ctrl.GetConfig()

	fyne.Do(func() {
		if record.OK {
			sg.statusLabel.SetText(fmt.Sprintf("Running: %s", filepath.Base(record.Path)))
			sg.ctrl.RememberTarget(record.Path)
			sg.recentSelect.Options = sg.ctrl.GetConfig().RecentTargets
			sg.recentSelect.Refresh()
		} else {
			sg.statusLabel.SetText(fmt.Sprintf("❌ Failed: %s", record.Error))
			dialog.ShowError(fmt.Errorf("failed to run application:\n%s", record.Error), sg.window)
		}
	})

	if cfg.ShowNotifications && record.OK {
		sg.app.SendNotification(&fyne.Notification{
			Title:   "Application launched",
			Content: fmt.Sprintf("%s is running through Wine", filepath.Base(record.Path)),
		})
	}
}

// onLaunchArchive extracts a zip target and launches what it contains
func (sg *LauncherGUI) onLaunchArchive(path string) {
	passwordEntry := widget.NewPasswordEntry()
	passwordEntry.SetPlaceHolder("Leave empty for unprotected archives")

	formItems := []*widget.FormItem{
		widget.NewFormItem("Password", passwordEntry),
	}

	dialog.ShowForm("📦 Extract Archive", "Extract", "Cancel", formItems, func(confirm bool) {
		if !confirm {
			return
		}

		password := passwordEntry.Text
		sg.statusLabel.SetText(fmt.Sprintf("Extracting: %s...", filepath.Base(path)))

		go func() {
			result, err := sg.ctrl.ExtractArchive(path, password)

			fyne.Do(func() {
				if err != nil {
					sg.statusLabel.SetText("❌ Extraction failed")
					dialog.ShowError(err, sg.window)
					return
				}

				switch len(result.Executables) {
				case 0:
					dialog.ShowInformation("Nothing to run",
						fmt.Sprintf("%s contains no Windows executables.", filepath.Base(path)),
						sg.window)
					sg.statusLabel.SetText("Ready")
				case 1:
					sg.setTarget(result.Executables[0])
					sg.launch(result.Executables[0])
				default:
					sg.showExecutablePicker(result.Executables)
				}
			})
		}()
	}, sg.window)
}

// showExecutablePicker lets the user choose between several extracted executables
func (sg *LauncherGUI) showExecutablePicker(paths []string) {
	picker := widget.NewSelect(paths, nil)
	picker.SetSelected(paths[0])

	formItems := []*widget.FormItem{
		widget.NewFormItem("Executable", picker),
	}

	dialog.ShowForm("Choose what to run", "Launch", "Cancel", formItems, func(confirm bool) {
		if !confirm || picker.Selected == "" {
			return
		}
		sg.setTarget(picker.Selected)
		sg.launch(picker.Selected)
	}, sg.window)
}

// checkWineInstallation warns and disables launching when Wine is missing.
// Inside Flatpak the host's wine is not observable, so the check is skipped.
func (sg *LauncherGUI) checkWineInstallation() {
	if launcher.InFlatpak() {
		return
	}

	checker := sg.ctrl.CheckRuntime()
	if checker.IsWineAvailable() {
		return
	}

	hint := ""
	for _, dep := range checker.GetMissingDependencies() {
		if dep.Name == "Wine" {
			hint = dep.InstallHint
			break
		}
	}

	dialog.ShowInformation("Wine Not Found",
		"Wine is not detected in your system path.\n"+
			"Please make sure Wine is installed to use this application.\n\n"+
			"Install: "+hint,
		sg.window)

	sg.statusLabel.SetText("Error: Wine not found")
	sg.launchButton.Disable()
}

func (sg *LauncherGUI) showRuntimeStatus() {
	checker := sg.ctrl.CheckRuntime()
	dialog.ShowInformation("🍷 Runtime Status", checker.FormatStatusReport(), sg.window)
}

func (sg *LauncherGUI) showHelp() {
	helpText := `WUI - Wine User Interface

USAGE:
• Browse to a Windows executable (.exe, .msi, .bat)
• Press Launch to run it through Wine
• Pick a .zip to extract it and run the installer inside

NOTES:
• Wine must be installed on this system (winehq.org)
• Each launch is independent; launching again starts another process
• Failed launches stay in the history with their error`

	dialog.ShowInformation("Help", helpText, sg.window)
}

// reloadHistory refreshes the history panel from the controller
func (sg *LauncherGUI) reloadHistory() {
	records := sg.ctrl.History()

	sg.historyMutex.Lock()
	sg.historyData = records
	sg.historyMutex.Unlock()

	fyne.Do(func() {
		sg.historyList.Refresh()
	})
}

func (sg *LauncherGUI) Run() {
	sg.window.ShowAndRun()
}

func main() {
	gui := NewLauncherGUI()
	gui.Run()
}
