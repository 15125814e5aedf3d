package trim

import "errors"

// Failure classes returned by Trim. Callers match them with errors.Is; the
// returned error wraps the class together with the path and underlying cause.
var (
	// ErrNotFound means the source path does not name an existing file.
	ErrNotFound = errors.New("source image not found")

	// ErrDecode means the source exists but no registered codec could read it.
	ErrDecode = errors.New("source image could not be decoded")

	// ErrEmptyContent means every pixel of the source is fully transparent.
	ErrEmptyContent = errors.New("no content found to trim")

	// ErrWrite means the trimmed image could not be encoded or saved.
	ErrWrite = errors.New("trimmed image could not be written")
)
