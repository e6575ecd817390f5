package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDimensions reads "RxC", "R x C" or "R,C" (rows first).
func ParseDimensions(s string) (Dimensions, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	sep := strings.IndexAny(s, "x*,")
	if sep < 0 {
		return Dimensions{}, fmt.Errorf("%w: %q is not ROWSxCOLS", ErrInvalidDimensions, s)
	}
	rows, err := strconv.Atoi(strings.TrimSpace(s[:sep]))
	if err != nil {
		return Dimensions{}, fmt.Errorf("%w: rows in %q: %v", ErrInvalidDimensions, s, err)
	}
	cols, err := strconv.Atoi(strings.TrimSpace(s[sep+1:]))
	if err != nil {
		return Dimensions{}, fmt.Errorf("%w: cols in %q: %v", ErrInvalidDimensions, s, err)
	}
	if rows <= 0 || cols <= 0 {
		return Dimensions{}, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return Dimensions{Rows: rows, Cols: cols}, nil
}
