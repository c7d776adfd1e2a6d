package middlewares

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const indexFile = "index.html"

// Static serves files from root verbatim for GET and HEAD requests. A
// directory is served through its index.html. Dotfiles are never served.
// Requests that match no file continue down the chain.
func Static(root string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Next()
			return
		}

		name, ok := resolveStatic(root, c.Request.URL.Path)
		if !ok {
			c.Next()
			return
		}

		f, err := os.Open(name)
		if err != nil {
			c.Next()
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			c.Next()
			return
		}

		http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
		c.Abort()
	}
}

// resolveStatic maps a URL path to a regular file under root.
func resolveStatic(root, urlPath string) (string, bool) {
	clean := path.Clean("/" + urlPath)
	for _, part := range strings.Split(clean, "/") {
		if strings.HasPrefix(part, ".") {
			return "", false
		}
	}

	name := filepath.Join(root, filepath.FromSlash(clean))
	info, err := os.Stat(name)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		name = filepath.Join(name, indexFile)
		info, err = os.Stat(name)
		if err != nil || info.IsDir() {
			return "", false
		}
	}
	return name, true
}
