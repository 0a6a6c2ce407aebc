package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the conversion form to the conversion service and reports outcomes
// with modal dialogs. All UI strings are localized via Localization.
