package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexmullins/zip"
)

// buildCLI compiles the CLI binary for the smoke tests
func buildCLI(t *testing.T) string {
	t.Helper()

	bin := filepath.Join(t.TempDir(), "test_cli")
	buildCmd := exec.Command("go", "build", "-o", bin, ".")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build CLI: %v\n%s", err, out)
	}
	return bin
}

// TestCLI_Help tests that the help screen lists every command
func TestCLI_Help(t *testing.T) {
	bin := buildCLI(t)

	cmd := exec.Command(bin, "help")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		t.Fatalf("help command failed: %v", err)
	}

	output := stdout.String()
	for _, command := range []string{"run", "check", "extract", "help"} {
		if !strings.Contains(output, command) {
			t.Errorf("help output does not mention %q:\n%s", command, output)
		}
	}
}

// TestCLI_UnknownCommand tests the error path for bogus subcommands
func TestCLI_UnknownCommand(t *testing.T) {
	bin := buildCLI(t)

	cmd := exec.Command(bin, "frobnicate")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		t.Error("unknown command should exit non-zero")
	}
}

// TestCLI_RunWithoutTarget tests that run refuses an empty selection
func TestCLI_RunWithoutTarget(t *testing.T) {
	bin := buildCLI(t)

	cmd := exec.Command(bin, "run")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		t.Error("run without a target should exit non-zero")
	}

	output := stdout.String() + stderr.String()
	if !strings.Contains(output, "no target selected") {
		t.Errorf("missing refusal message in output:\n%s", output)
	}
}

// TestCLI_RunMissingFile tests the error path for vanished targets
func TestCLI_RunMissingFile(t *testing.T) {
	bin := buildCLI(t)

	cmd := exec.Command(bin, "run", filepath.Join(t.TempDir(), "gone.exe"))
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err == nil {
		t.Error("run on a missing file should exit non-zero")
	}
}

// TestCLI_Check tests the dependency report
func TestCLI_Check(t *testing.T) {
	bin := buildCLI(t)

	cmd := exec.Command(bin, "check")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	// Exits non-zero when wine is missing, which is fine here
	_ = cmd.Run()

	output := stdout.String()
	if !strings.Contains(output, "Wine") {
		t.Errorf("check output does not mention Wine:\n%s", output)
	}
}

// TestCLI_ExtractList tests listing runnable entries of an archive
func TestCLI_ExtractList(t *testing.T) {
	bin := buildCLI(t)

	dir := t.TempDir()
	archive := filepath.Join(dir, "bundle.zip")
	f, err := os.Create(archive)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("setup.exe")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("MZ fake installer")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cmd := exec.Command(bin, "extract", "-list", archive)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		t.Fatalf("extract -list failed: %v", err)
	}

	if !strings.Contains(stdout.String(), "setup.exe") {
		t.Errorf("listing does not mention setup.exe:\n%s", stdout.String())
	}
}
