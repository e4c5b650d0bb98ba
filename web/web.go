// Package web carries the embedded server-side templates.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
