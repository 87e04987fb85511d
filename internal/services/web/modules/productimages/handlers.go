package productimages

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/dailyharvest/storefront/internal/services/web/routepath"
)

type handlers struct {
	files http.Handler
}

func newHandlers(images fs.FS) handlers {
	return handlers{files: http.StripPrefix(routepath.ProductImages, noDirectoryListing(http.FileServerFS(images)))}
}

// noDirectoryListing hides directory indexes.
func noDirectoryListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
