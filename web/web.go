// Package web holds the embedded browser assets for the console.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
