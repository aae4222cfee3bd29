package launcher

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexmullins/zip"
)

// Windows software often ships as a zip holding the installer, sometimes
// password-protected. The alexmullins/zip fork reads both plain and
// WinZip-AES archives.

// ArchiveEntry describes one runnable file inside an archive
type ArchiveEntry struct {
	Name      string
	Size      int64
	Encrypted bool
	Kind      TargetKind
}

// ExtractResult summarizes an archive extraction
type ExtractResult struct {
	DestDir     string
	Executables []string
	FilesTotal  int
	BytesTotal  int64
}

// ListExecutables returns the runnable entries (.exe, .msi, .bat, .cmd)
// of a zip archive without extracting anything.
func ListExecutables(archivePath string) ([]ArchiveEntry, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("cannot open archive %s: %w", filepath.Base(archivePath), err)
	}
	defer reader.Close()

	var entries []ArchiveEntry
	for _, f := range reader.File {
		if f.FileInfo().IsDir() {
			continue
		}
		kind := DetectKind(f.Name)
		if kind == KindUnknown || kind == KindArchive {
			continue
		}
		entries = append(entries, ArchiveEntry{
			Name:      f.Name,
			Size:      int64(f.UncompressedSize64),
			Encrypted: f.IsEncrypted(),
			Kind:      kind,
		})
	}

	return entries, nil
}

// Extract unpacks an archive into destDir and returns the paths of the
// runnable files found. password may be empty for plain archives.
func Extract(archivePath, password, destDir string) (*ExtractResult, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("cannot open archive %s: %w", filepath.Base(archivePath), err)
	}
	defer reader.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, err
	}

	result := &ExtractResult{DestDir: destDir}

	for _, f := range reader.File {
		if f.FileInfo().IsDir() {
			continue
		}

		outPath, err := sanitizeEntryPath(destDir, f.Name)
		if err != nil {
			return nil, err
		}

		if f.IsEncrypted() {
			if password == "" {
				return nil, fmt.Errorf("archive entry %s is password-protected", f.Name)
			}
			f.SetPassword(password)
		}

		if err := extractEntry(f, outPath); err != nil {
			return nil, fmt.Errorf("cannot extract %s: %w", f.Name, err)
		}

		result.FilesTotal++
		result.BytesTotal += int64(f.UncompressedSize64)

		kind := DetectKind(outPath)
		if kind != KindUnknown && kind != KindArchive {
			result.Executables = append(result.Executables, outPath)
		}
	}

	return result, nil
}

// sanitizeEntryPath rejects entries that would escape destDir (zip slip)
func sanitizeEntryPath(destDir, name string) (string, error) {
	outPath := filepath.Join(destDir, filepath.FromSlash(name))
	if !strings.HasPrefix(outPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("illegal archive entry path: %s", name)
	}
	return outPath, nil
}

func extractEntry(f *zip.File, outPath string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return err
	}

	out, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}

// ExtractToTemp extracts the archive into a fresh temp directory; the
// caller decides when to clean it up (the launched app may still need it).
func ExtractToTemp(archivePath, password string) (*ExtractResult, error) {
	destDir, err := os.MkdirTemp("", "wui-extract-*")
	if err != nil {
		return nil, err
	}

	result, err := Extract(archivePath, password, destDir)
	if err != nil {
		os.RemoveAll(destDir)
		return nil, err
	}

	return result, nil
}
