// Package exiftool builds metadata-update commands and runs them through a
// single stay-open exiftool process.
//
// A [Command] describes one update: set every date-bearing tag (-AllDates)
// of one file to one timestamp, in place. Its String form is the literal
// command line printed in dry-run mode. [Writer] executes commands.
package exiftool
