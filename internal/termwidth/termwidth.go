// Package termwidth reports the column count of the terminal attached to a file.
package termwidth

import "os"

// Default is the width used when the file is not a terminal.
const Default = 64

// Columns returns the terminal width of f, or Default when f is nil or not
// attached to a terminal.
func Columns(f *os.File) int {
	if f == nil {
		return Default
	}
	if n, ok := columns(f.Fd()); ok && n > 0 {
		return n
	}
	return Default
}
