// Package language normalizes the language tags found in media containers.
//
// Container metadata is sloppy: the same language shows up as a 2-letter
// code, a 3-letter code (sometimes two competing ones), or a full word,
// in any casing. All comparisons against a configured target language go
// through this package so the matching rules live in one place.
package language
