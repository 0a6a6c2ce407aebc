package ui

import (
	"log"

	"fyne.io/fyne/v2"

	"github.com/ytget/vegascon/internal/model"
	"github.com/ytget/vegascon/internal/platform"
)

// LoadAppIcon loads the window icon from the resource directory.
// It returns nil when the icon is missing.
func LoadAppIcon(resourceDir string) fyne.Resource {
	path, ok := platform.AppIconPath(resourceDir)
	if !ok {
		return nil
	}
	return loadResource(path)
}

// LoadVersionIcon loads the icon of a catalog entry, or nil when the file is
// missing or unreadable
func LoadVersionIcon(resourceDir string, entry model.VersionEntry) fyne.Resource {
	path, ok := platform.IconPath(resourceDir, entry)
	if !ok {
		return nil
	}
	return loadResource(path)
}

func loadResource(path string) fyne.Resource {
	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		log.Printf("Failed to load icon %s: %v", path, err)
		return nil
	}
	return res
}
