// Package static provides the embedded stylesheet and scripts of the site.
package static

import "embed"

// FS embeds styles.css and the js directory.
//
//go:embed styles.css js
var FS embed.FS
