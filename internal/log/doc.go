// Package log provides the structured logger of tagbalance, built on top of
// the standard slog package.
//
// Scanners log the source line that produced each event. Those lines come
// from arbitrary user files and can be very long or carry embedded
// newlines, so the CompactHandler shortens string attributes to a fixed
// display width and flattens line breaks before the record reaches the
// underlying text or JSON handler.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//	logger.Debug("push", "tag", "div", "line", 3, "text", line)
//
// In non-verbose mode only warnings and errors are written, so reports on
// stdout stay clean.
package log
