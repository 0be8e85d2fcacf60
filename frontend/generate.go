package frontend

import "embed"

//go:embed dist/assets
var Assets embed.FS

//go:embed dist/index.html
var Index embed.FS
