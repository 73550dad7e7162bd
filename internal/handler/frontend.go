package handler

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// pageRoutes maps page files to the paths the customer and staff open in a browser.
var pageRoutes = map[string]string{
	"index.html": "/",
	"admin.html": "/admin",
}

// setupFrontend serves the top-level files of dir: the two pages at their routes,
// everything else (scripts, styles) under its own name.
func setupFrontend(engine *gin.Engine, dir string, logger *slog.Logger) {
	if dir == "" {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("frontend directory unavailable, pages not served", "dir", dir, "error", err.Error())
		return
	}

	served := 0
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		route, ok := pageRoutes[name]
		if !ok {
			route = "/" + name
		}
		engine.StaticFile(route, filepath.Join(dir, name))
		served++
	}
	logger.Info("frontend served", "dir", dir, "files", served)
}
