// Package static embeds the storefront stylesheet, product resources and
// product images.
package static

import (
	"embed"
	"io/fs"
)

// FS exposes web static assets for HTTP serving and catalog loading.
//
//go:embed app.css products
var FS embed.FS

// ProductsDir is the directory holding catalog resources inside FS.
const ProductsDir = "products"

// ProductImages returns the product image directory as its own filesystem.
func ProductImages() fs.FS {
	sub, err := fs.Sub(FS, ProductsDir+"/productImages")
	if err != nil {
		panic(err)
	}
	return sub
}
