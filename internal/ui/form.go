package ui

import (
	"fmt"
	"sync"

	"github.com/ytget/vegascon/internal/model"
)

// Form holds the conversion form state independently of any widget.
// RootUI mirrors it into widgets; tests drive it directly.
type Form struct {
	mu              sync.Mutex
	inputPath       string
	format          model.ProjectFormat
	versions        []model.VersionEntry
	selectedVersion string
	status          model.ConversionStatus
}

// NewForm creates a form with the catalog of format loaded
func NewForm(format model.ProjectFormat) *Form {
	if !format.IsValid() {
		format = model.FormatProEditor
	}
	return &Form{
		format:   format,
		versions: model.Catalog(format),
		status:   model.StatusIdle,
	}
}

// InputPath returns the selected project file
func (f *Form) InputPath() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inputPath
}

// SetInputPath stores the path picked in the file selector
func (f *Form) SetInputPath(path string) {
	f.mu.Lock()
	f.inputPath = path
	f.mu.Unlock()
}

// Format returns the selected output format
func (f *Form) Format() model.ProjectFormat {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.format
}

// SelectFormat switches the output format, reloads the version list with the
// new catalog and clears the version selection.
func (f *Form) SelectFormat(format model.ProjectFormat) []model.VersionEntry {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.format = format
	f.versions = model.Catalog(format)
	f.selectedVersion = ""
	return append([]model.VersionEntry(nil), f.versions...)
}

// Versions returns the version entries currently offered
func (f *Form) Versions() []model.VersionEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.VersionEntry(nil), f.versions...)
}

// VersionLabels returns the labels currently offered, in catalog order
func (f *Form) VersionLabels() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	labels := make([]string, len(f.versions))
	for i, e := range f.versions {
		labels[i] = e.Label
	}
	return labels
}

// SelectedVersion returns the selected version label, empty when none
func (f *Form) SelectedVersion() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selectedVersion
}

// SelectVersion selects a label from the current version list. An empty
// label clears the selection.
func (f *Form) SelectVersion(label string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if label == "" {
		f.selectedVersion = ""
		return nil
	}
	for _, e := range f.versions {
		if e.Label == label {
			f.selectedVersion = label
			return nil
		}
	}
	return fmt.Errorf("%w: %q", model.ErrUnknownVersion, label)
}

// SelectedEntry returns the catalog entry of the selected version
func (f *Form) SelectedEntry() (model.VersionEntry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, e := range f.versions {
		if e.Label == f.selectedVersion {
			return e, true
		}
	}
	return model.VersionEntry{}, false
}

// Status returns the form's conversion status
func (f *Form) Status() model.ConversionStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// SetStatus moves the form to next if the transition is legal
func (f *Form) SetStatus(next model.ConversionStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.status.CanTransitionTo(next) {
		return fmt.Errorf("invalid status transition %s -> %s", f.status, next)
	}
	f.status = next
	return nil
}

// Submit snapshots the form into an immutable ConversionRequest. The form
// moves Idle -> Validating, and on to Failed when validation fails.
func (f *Form) Submit() (model.ConversionRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status != model.StatusIdle {
		return model.ConversionRequest{}, fmt.Errorf("cannot submit while %s", f.status)
	}
	f.status = model.StatusValidating

	req, err := model.NewConversionRequest(f.inputPath, f.format, f.selectedVersion)
	if err != nil {
		f.status = model.StatusFailed
		return model.ConversionRequest{}, err
	}
	return req, nil
}

// Reset returns a finished form to Idle
func (f *Form) Reset() {
	f.mu.Lock()
	if f.status.IsFinished() {
		f.status = model.StatusIdle
	}
	f.mu.Unlock()
}
