package platform

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ConverterName is the converter executable shipped next to the application
const ConverterName = "msvpvf.exe"

// converterNames are tried in order when looking the converter up
var converterNames = []string{ConverterName, strings.TrimSuffix(ConverterName, ".exe")}

// ResolveConverter returns the path of the converter executable.
// Resolution order: the configured path, a converter next to the running
// executable, a converter on PATH, then the bare executable name.
func ResolveConverter(configured string) string {
	if configured = strings.TrimSpace(configured); configured != "" {
		return configured
	}

	if exe, err := os.Executable(); err == nil {
		if found := findConverterIn(filepath.Dir(exe)); found != "" {
			return found
		}
	}

	for _, name := range converterNames {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	return ConverterName
}

// findConverterIn looks for a converter binary in dir
func findConverterIn(dir string) string {
	for _, name := range converterNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
