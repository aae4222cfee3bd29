//go:build ignore
// +build ignore

package main

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	baseDir := filepath.Dir(os.Args[0])
	if len(os.Args) > 1 {
		baseDir = os.Args[1]
	}

	// Create directories
	dirs := []string{"apps", "archives", "misc"}
	for _, dir := range dirs {
		os.MkdirAll(filepath.Join(baseDir, dir), 0755)
	}

	fmt.Println("📁 Generating test files...")

	createExecutables(baseDir)
	createMiscFiles(baseDir)
	createZipBundle(baseDir)

	fmt.Println("✅ All test files generated!")
}

// createExecutables writes fake Windows binaries with a valid MZ header
func createExecutables(baseDir string) {
	// Minimal DOS header is enough for the header probe
	mzStub := append([]byte("MZ"), make([]byte, 62)...)

	files := map[string][]byte{
		"apps/hello.exe":    append(mzStub, []byte("fake PE payload")...),
		"apps/setup.msi":    []byte("fake msi installer"),
		"apps/install.bat":  []byte("@echo off\r\necho installing...\r\n"),
		"apps/headless.exe": []byte("no MZ header here"),
	}

	for name, content := range files {
		path := filepath.Join(baseDir, name)
		os.WriteFile(path, content, 0644)
		fmt.Printf("  ✓ %s\n", name)
	}
}

// createMiscFiles writes files the launcher should refuse or ignore
func createMiscFiles(baseDir string) {
	files := map[string]string{
		"misc/readme.txt": "This is not a Windows executable.\n",
		"misc/notes.md":   "# Notes\n\nNothing runnable in here.\n",
	}

	for name, content := range files {
		path := filepath.Join(baseDir, name)
		os.WriteFile(path, []byte(content), 0644)
		fmt.Printf("  ✓ %s\n", name)
	}
}

// createZipBundle writes an archive containing an installer plus noise
func createZipBundle(baseDir string) {
	archivePath := filepath.Join(baseDir, "archives", "game_bundle.zip")
	archive, err := os.Create(archivePath)
	if err != nil {
		fmt.Printf("  ✗ Failed to create ZIP: %v\n", err)
		return
	}
	defer archive.Close()

	zipWriter := zip.NewWriter(archive)
	defer zipWriter.Close()

	mzStub := append([]byte("MZ"), make([]byte, 62)...)
	entries := map[string][]byte{
		"game/setup.exe":  append(mzStub, []byte("fake installer")...),
		"game/data.pak":   []byte("binary asset data"),
		"game/readme.txt": []byte("Run setup.exe to install.\n"),
	}

	for name, content := range entries {
		w, _ := zipWriter.Create(name)
		w.Write(content)
	}

	fmt.Println("  ✓ archives/game_bundle.zip")
}
