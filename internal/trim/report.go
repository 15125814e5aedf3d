package trim

import (
	"errors"
	"fmt"
	"io"
)

// PrintResult writes the success summary for res to w.
func PrintResult(w io.Writer, res *Result) {
	fmt.Fprintln(w, "Image trimmed successfully")
	fmt.Fprintf(w, "  Original size: %dx%d\n", res.Original.X, res.Original.Y)
	fmt.Fprintf(w, "  Trimmed size:  %dx%d\n", res.Trimmed.X, res.Trimmed.Y)
	fmt.Fprintf(w, "  Saved to:      %s\n", res.OutputPath)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "To use the trimmed image:")
	fmt.Fprintf(w, "  replace references to %s with %s\n", res.InputPath, res.OutputPath)
}

// PrintError writes a one-line description of a failed trim of inputPath.
func PrintError(w io.Writer, inputPath string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		fmt.Fprintf(w, "File not found: %s\n", inputPath)
	case errors.Is(err, ErrEmptyContent):
		fmt.Fprintf(w, "No content found to trim in %s\n", inputPath)
	default:
		fmt.Fprintf(w, "Trim failed: %v\n", err)
	}
}
