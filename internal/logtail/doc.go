// Package logtail reads the end of the kiosk log file for on-device
// diagnostics.
//
// Tail seeks to the end of the file and reads backwards in 4 KiB blocks until
// it has enough complete lines, so memory use follows the requested line
// count rather than the file size. A missing file is not an error; the
// settings page simply shows no log.
//
// ParseLevel recognizes the level column of charmbracelet/log text output
// (DEBU, INFO, WARN, ERRO, FATA) so callers can color lines by severity.
package logtail
