package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	nativedialog "github.com/sqweek/dialog"
)

// fileFilter restricts a file picker to some extensions (without the dot)
type fileFilter struct {
	Description string
	Extensions  []string
}

// projectFileFilters limits browsing to *.veg and *.vf
var projectFileFilters = []fileFilter{
	{Description: VegFilterDescription, Extensions: []string{"veg"}},
	{Description: VFFilterDescription, Extensions: []string{"vf"}},
}

// showFilePicker lets the user pick one file. The native OS dialog is tried
// first when native is set; Fyne's dialog is used otherwise or when the
// native one is unavailable.
func showFilePicker(window fyne.Window, title, startDir string, native bool, filters []fileFilter, onPicked func(string)) {
	if native {
		builder := nativedialog.File().Title(title)
		for _, f := range filters {
			builder = builder.Filter(f.Description, f.Extensions...)
		}
		if startDir != "" {
			builder = builder.SetStartDir(startDir)
		}

		path, err := builder.Load()
		switch {
		case err == nil:
			onPicked(path)
			return
		case errors.Is(err, nativedialog.ErrCancelled):
			return
		default:
			log.Printf("Native file dialog unavailable, using built-in dialog: %v", err)
		}
	}

	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("File dialog error: %v", err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		onPicked(path)
	}, window)

	var extensions []string
	for _, f := range filters {
		for _, ext := range f.Extensions {
			extensions = append(extensions, "."+ext)
		}
	}
	if len(extensions) > 0 {
		fd.SetFilter(storage.NewExtensionFileFilter(extensions))
	}

	if startDir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(startDir)); err == nil {
			fd.SetLocation(lister)
		}
	}

	fd.Show()
}
