// Package templates embeds the HTML views consumed through pkg/render.
package templates

import "embed"

//go:embed admin checklist security
var FS embed.FS
