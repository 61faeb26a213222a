package view

import (
	"embed"
	"io/fs"
)

// StylesheetPath is where the page expects the stylesheet to be served.
const StylesheetPath = "/static/app.css"

//go:embed static
var assets embed.FS

// Assets returns the embedded files under their "static/" directory.
func Assets() fs.FS {
	return assets
}
