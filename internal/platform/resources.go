package platform

import (
	"os"
	"path/filepath"

	"github.com/ytget/vegascon/internal/model"
)

// Resource layout
const (
	DefaultResourceDir = "Res"
	AppIconFile        = "icon.png"
)

// IconPath returns the on-disk icon for a catalog entry. The second result is
// false when the file is missing; callers show no icon in that case.
func IconPath(resourceDir string, entry model.VersionEntry) (string, bool) {
	if entry.IconPath == "" {
		return "", false
	}
	return existingFile(filepath.Join(resourceDir, filepath.FromSlash(entry.IconPath)))
}

// AppIconPath returns the application icon under resourceDir
func AppIconPath(resourceDir string) (string, bool) {
	return existingFile(filepath.Join(resourceDir, AppIconFile))
}

// ResolveResourceDir returns resourceDir when it exists, otherwise the
// default resource directory next to the running executable
func ResolveResourceDir(resourceDir string) string {
	if resourceDir != "" {
		if info, err := os.Stat(resourceDir); err == nil && info.IsDir() {
			return resourceDir
		}
	}
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), DefaultResourceDir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	if resourceDir == "" {
		return DefaultResourceDir
	}
	return resourceDir
}

func existingFile(path string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}
