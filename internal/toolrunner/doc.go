// Package toolrunner provides the single execution path for every external
// tool slicer invokes. Commands run synchronously with captured stdout and
// stderr; a non-zero exit code is data, not an error, so callers can apply
// their own recovery policy per invocation.
package toolrunner
