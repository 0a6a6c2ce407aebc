package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ytget/vegascon/internal/model"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ProjectFileExtensions lists the extensions accepted by the file picker
var ProjectFileExtensions = []string{".veg", ".vf"}

// IsProjectFile reports whether path has a supported project extension
func IsProjectFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range ProjectFileExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("file path is empty")
	}
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %v", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		// explorer returns exit code 1 even when it succeeds
		_ = exec.Command(ExplorerCommand, WindowsSelectParam+absPath).Run()
		return nil
	case OSLinux:
		return openFileInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInManagerLinux opens directory containing file on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func openFileInManagerLinux(filePath string) error {
	dir := filePath
	if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
		dir = filepath.Dir(filePath)
	}

	// Try xdg-open first (most common)
	cmd := exec.Command(XDGOpenCommand, dir)
	if err := cmd.Run(); err == nil {
		return nil
	}

	// Fallback to common file managers
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// LocateOutput finds the file the converter produced for req. The derived
// output path is tried first, then the same name with a dot before the type.
// When neither exists the input's directory is returned.
func LocateOutput(req model.ConversionRequest) string {
	candidates := []string{
		req.OutputPath,
		strings.TrimSuffix(req.InputPath, filepath.Ext(req.InputPath)) +
			model.OutputVersionPrefix + req.VersionString() + req.Format.Extension(),
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return filepath.Dir(req.InputPath)
}

// GetHomeDocumentsDir returns the user's Documents directory, or the home
// directory when Documents does not exist
func GetHomeDocumentsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	documentsDir := filepath.Join(homeDir, "Documents")
	if info, err := os.Stat(documentsDir); err == nil && info.IsDir() {
		return documentsDir, nil
	}
	return homeDir, nil
}
