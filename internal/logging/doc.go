// Package logging constructs the slog loggers used across mkvswap.
//
// Two output formats are supported: a compact single-line console format
// for interactive runs and a JSON format for log collection. Attr helper
// aliases keep call sites free of direct slog imports.
package logging
