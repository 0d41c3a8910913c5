// Package pipeline orchestrates file discovery, per-file processing, and
// batch reporting.
//
// Each discovered file moves through Discovered → TokenExtracted →
// DateParsed → Applied (or Emitted in dry-run). Any step may end the file in
// Skipped (no date in the name) or Errored (unparseable date, exiftool
// failure). Only an invalid root directory stops the whole run; it is
// detected by [ResolveRoot] before any file is touched.
package pipeline
