package model

// Package model defines domain data structures used across the app: project
// formats, version catalogs, conversion requests and the conversion status
// machine. Requests are immutable values built at submit time.
