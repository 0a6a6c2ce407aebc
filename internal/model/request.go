package model

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Output naming
const (
	OutputVersionPrefix = "_V"
	RequestIDPrefix     = "convert-"
)

// ConversionRequest is the immutable record of one conversion attempt.
// Fields are set once by NewConversionRequest.
type ConversionRequest struct {
	ID         string
	InputPath  string
	Format     ProjectFormat
	Version    int
	OutputPath string
	CreatedAt  time.Time
}

// NewConversionRequest validates the form values and builds a request.
// versionLabel is the label shown in the version selector, e.g. "VEGAS Pro 17".
func NewConversionRequest(inputPath string, format ProjectFormat, versionLabel string) (ConversionRequest, error) {
	inputPath = strings.TrimSpace(inputPath)
	if inputPath == "" {
		return ConversionRequest{}, ErrMissingInput
	}
	if strings.TrimSpace(versionLabel) == "" {
		return ConversionRequest{}, ErrMissingVersion
	}
	if !format.IsValid() {
		return ConversionRequest{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	version, err := strconv.Atoi(ExtractVersionNumber(versionLabel))
	if err != nil || version == 0 {
		return ConversionRequest{}, fmt.Errorf("%w: %q", ErrUnknownVersion, versionLabel)
	}
	return NewConversionRequestForVersion(inputPath, format, version)
}

// NewConversionRequestForVersion builds a request from a numeric version.
func NewConversionRequestForVersion(inputPath string, format ProjectFormat, version int) (ConversionRequest, error) {
	inputPath = strings.TrimSpace(inputPath)
	if inputPath == "" {
		return ConversionRequest{}, ErrMissingInput
	}
	if !format.IsValid() {
		return ConversionRequest{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if _, ok := LookupVersion(format, version); !ok {
		return ConversionRequest{}, fmt.Errorf("%w: %s %d", ErrUnknownVersion, format.DisplayName(), version)
	}

	return ConversionRequest{
		ID:         generateRequestID(),
		InputPath:  inputPath,
		Format:     format,
		Version:    version,
		OutputPath: DeriveOutputPath(inputPath, version, format),
		CreatedAt:  time.Now(),
	}, nil
}

// VersionString returns the value of the converter's --version argument
func (r ConversionRequest) VersionString() string {
	return strconv.Itoa(r.Version)
}

// TargetLabel returns the catalog label of the target version
func (r ConversionRequest) TargetLabel() string {
	if e, ok := LookupVersion(r.Format, r.Version); ok {
		return e.Label
	}
	return r.Format.DisplayName() + " " + r.VersionString()
}

// DeriveOutputPath strips the input extension and appends "_V<version>" and
// the output type. No dot is inserted before the type, so
// "C:/x/project.veg" at version 12 becomes "C:/x/project_V12veg".
func DeriveOutputPath(inputPath string, version int, format ProjectFormat) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + OutputVersionPrefix + strconv.Itoa(version) + format.OutputType()
}

// generateRequestID uses UUID v7 so IDs sort by creation time
func generateRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RequestIDPrefix+"%d", time.Now().UnixNano())
	}
	return RequestIDPrefix + id.String()
}
