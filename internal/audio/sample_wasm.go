//go:build js

package audio

import "errors"

// PickSample is unavailable in the browser. Use DecodeSample on an
// uploaded buffer instead.
func PickSample() (*Sample, error) {
	return nil, errors.New("audio: file picker not supported in the browser")
}
