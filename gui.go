// Package main provides GUI launcher
package main

import (
	"fmt"
)

// LaunchGUI launches the GUI application (requires Fyne to be installed)
func LaunchGUI() {
	// The GUI lives in its own binary so the CLI stays free of the
	// Fyne/OpenGL toolchain requirements.
	fmt.Println("To launch the GUI version, build the GUI from cmd/gui:")
	fmt.Println("  cd cmd/gui && go build -o ../../wui-gui")
	fmt.Println("Then run: ./wui-gui")
}
