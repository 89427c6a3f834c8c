// Package static embeds the website's scripts and stylesheet.
package static

import "embed"

//go:embed css js
var FS embed.FS
