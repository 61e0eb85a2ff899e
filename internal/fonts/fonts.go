// Package fonts provides the embedded Go fonts used for wheel labels.
package fonts

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// TTF returns the TrueType data for the label face.
func TTF(bold bool) []byte {
	if bold {
		return gobold.TTF
	}
	return goregular.TTF
}
