// Package dsalog wraps github.com/grailbio/base/log with the small set of
// pipeline-stage progress/summary messages the reference prints via
// fprintf to stderr, so every stage logs through the same leveled,
// timestamped logger the rest of the teacher stack uses.
package dsalog

import (
	"github.com/grailbio/base/log"
)

// Stage announces the start of a pipeline stage.
func Stage(name string) {
	log.Printf("stage: %s", name)
}

// StageDone announces a pipeline stage's completion, along with how many
// items it produced.
func StageDone(name string, produced int) {
	log.Printf("stage: %s done (%d produced)", name, produced)
}

// Debugf logs at debug level, matching the reference's verbose tracing.
func Debugf(format string, args ...interface{}) {
	log.Debug.Printf(format, args...)
}

// Errorf logs a non-fatal error (a condition the run continues past, such
// as one unreadable template database entry).
func Errorf(format string, args ...interface{}) {
	log.Error.Printf(format, args...)
}

// Fatalf logs a fatal error and terminates the process, matching the
// reference's uncaught-exception-aborts-the-run behavior.
func Fatalf(format string, args ...interface{}) {
	log.Fatalf(format, args...)
}
