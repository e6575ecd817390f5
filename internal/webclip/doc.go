// Package webclip writes to the browser clipboard.
package webclip
