package platform

// Package platform contains OS integration and external tooling glue:
// locating the converter executable, project file and icon lookups, and
// revealing converted files in the system file manager.
