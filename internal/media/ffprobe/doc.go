// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Only audio streams are requested: the scanner needs the stream index,
// the language tag, and the default disposition flag, nothing else.
//
// Primary entry point:
//   - Inspect: executes ffprobe and returns the parsed Result
package ffprobe
