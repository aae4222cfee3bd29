package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/linuxpengueni/wui/launcher"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "run":
			runLaunchCommand(os.Args[2:])
			return
		case "check":
			runCheckCommand(os.Args[2:])
			return
		case "extract":
			runExtractCommand(os.Args[2:])
			return
		case "help", "--help", "-h":
			printMainHelp()
			return
		}
	}

	printMainHelp()
	os.Exit(1)
}

func printMainHelp() {
	fmt.Println("🍷 WUI - Wine User Interface")
	fmt.Println("============================")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  run       Launch a Windows executable through Wine")
	fmt.Println("  extract   Extract a zip archive and list the executables inside")
	fmt.Println("  check     Check whether Wine and its helpers are installed")
	fmt.Println("  help      Show this help")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  wui run [options] <file.exe>")
	fmt.Println("  wui extract [options] <archive.zip>")
	fmt.Println("  wui check")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  wui run ~/Downloads/setup.exe")
	fmt.Println("  wui run -wait game.exe")
	fmt.Println("  wui extract -password secret installer.zip")
	fmt.Println()
	fmt.Println("The graphical interface lives in its own binary; build it with:")
	fmt.Println("  go build -o wui-gui ./cmd/gui")
}

// ═══════════════════════════════════════════════════════════════════════════
// RUN COMMAND
// ═══════════════════════════════════════════════════════════════════════════

func runLaunchCommand(args []string) {
	runCmd := flag.NewFlagSet("run", flag.ExitOnError)

	wait := runCmd.Bool("wait", false, "Wait for the application to exit and report its exit code")

	runCmd.Usage = func() {
		fmt.Println("🚀 Launch a Windows Executable")
		fmt.Println("==============================")
		fmt.Println()
		fmt.Println("Runs the given file through the Wine runtime. The file's directory")
		fmt.Println("becomes the working directory, matching how Windows launches programs.")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  wui run [options] <file.exe>")
		fmt.Println()
		fmt.Println("Options:")
		fmt.Println("  -wait")
		fmt.Println("        Wait for the application to exit and report its exit code")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  wui run ~/Downloads/setup.exe")
		fmt.Println("  wui run -wait tool.exe")
	}

	if err := runCmd.Parse(args); err != nil {
		os.Exit(1)
	}

	if runCmd.NArg() == 0 {
		fmt.Println("❌ Error: no target selected")
		runCmd.Usage()
		os.Exit(1)
	}

	target, err := launcher.Validate(runCmd.Arg(0))
	if err != nil {
		fmt.Printf("❌ Error: %v\n", err)
		os.Exit(1)
	}

	if target.Kind == launcher.KindExecutable {
		if hasPE, err := launcher.HasPEHeader(target.Path); err == nil && !hasPE {
			fmt.Printf("⚠️  Warning: %s does not look like a Windows executable\n", filepath.Base(target.Path))
		}
	}

	runner, err := launcher.NewRunner()
	if err != nil {
		fmt.Printf("❌ Error: %v\n", err)
		fmt.Println("Run 'wui check' for installation hints.")
		os.Exit(1)
	}

	if *wait {
		code, err := runner.LaunchWait(context.Background(), target)
		if err != nil {
			fmt.Printf("❌ Launch failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✅ %s exited with code %d\n", filepath.Base(target.Path), code)
		os.Exit(code)
	}

	result, err := runner.Launch(context.Background(), target)
	if err != nil {
		fmt.Printf("❌ Launch failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Running: %s (PID %d)\n", filepath.Base(target.Path), result.PID)
}

// ═══════════════════════════════════════════════════════════════════════════
// EXTRACT COMMAND
// ═══════════════════════════════════════════════════════════════════════════

func runExtractCommand(args []string) {
	extractCmd := flag.NewFlagSet("extract", flag.ExitOnError)

	password := extractCmd.String("password", "", "Password for protected archives")
	dest := extractCmd.String("dest", "", "Destination directory (default: a fresh temp directory)")
	listOnly := extractCmd.Bool("list", false, "List runnable entries without extracting")

	extractCmd.Usage = func() {
		fmt.Println("📦 Extract an Archive")
		fmt.Println("=====================")
		fmt.Println()
		fmt.Println("Unpacks a zip archive (plain or password-protected) and reports the")
		fmt.Println("Windows executables it contains, ready for 'wui run'.")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  wui extract [options] <archive.zip>")
		fmt.Println()
		fmt.Println("Options:")
		fmt.Println("  -password string")
		fmt.Println("        Password for protected archives")
		fmt.Println("  -dest string")
		fmt.Println("        Destination directory (default: a fresh temp directory)")
		fmt.Println("  -list")
		fmt.Println("        List runnable entries without extracting")
	}

	if err := extractCmd.Parse(args); err != nil {
		os.Exit(1)
	}

	if extractCmd.NArg() == 0 {
		fmt.Println("❌ Error: no archive given")
		extractCmd.Usage()
		os.Exit(1)
	}

	archivePath := extractCmd.Arg(0)

	if *listOnly {
		entries, err := launcher.ListExecutables(archivePath)
		if err != nil {
			fmt.Printf("❌ Error: %v\n", err)
			os.Exit(1)
		}
		if len(entries) == 0 {
			fmt.Println("No runnable entries found.")
			return
		}
		for _, e := range entries {
			lock := ""
			if e.Encrypted {
				lock = " 🔒"
			}
			fmt.Printf("  %s (%s, %s)%s\n", e.Name, e.Kind, formatBytes(e.Size), lock)
		}
		return
	}

	var result *launcher.ExtractResult
	var err error
	if *dest != "" {
		result, err = launcher.Extract(archivePath, *password, *dest)
	} else {
		result, err = launcher.ExtractToTemp(archivePath, *password)
	}
	if err != nil {
		fmt.Printf("❌ Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Extraction complete!")
	fmt.Printf("📁 Destination: %s\n", result.DestDir)
	fmt.Printf("📊 Files: %d (%s)\n", result.FilesTotal, formatBytes(result.BytesTotal))

	if len(result.Executables) == 0 {
		fmt.Println("⚠️  No Windows executables found in the archive.")
		return
	}

	fmt.Println("Runnable files:")
	for _, exe := range result.Executables {
		fmt.Printf("  wui run %s\n", exe)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// CHECK COMMAND
// ═══════════════════════════════════════════════════════════════════════════

func runCheckCommand(args []string) {
	checkCmd := flag.NewFlagSet("check", flag.ExitOnError)

	checkCmd.Usage = func() {
		fmt.Println("Usage: wui check")
		fmt.Println()
		fmt.Println("Probes the host for the Wine runtime and its helpers.")
	}

	if err := checkCmd.Parse(args); err != nil {
		os.Exit(1)
	}

	checker := launcher.NewDependencyChecker()
	checker.CheckAll()

	fmt.Print(checker.FormatStatusReport())

	if warning := checker.FormatMissingWarning(); warning != "" {
		fmt.Println()
		fmt.Print(warning)
		os.Exit(1)
	}
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), []string{"KB", "MB", "GB", "TB"}[exp])
}
