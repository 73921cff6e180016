package http

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/http/dto"
)

// apiPrefix marks paths that never fall back to the browser shell.
const apiPrefix = "/api/"

// spaHandler serves files from a static directory and answers every other
// path with the directory's index.html, so client-side routes load the app.
type spaHandler struct {
	root  fs.FS
	files http.Handler
}

// NewSPAHandler returns a handler for a single-page app built into dir.
func NewSPAHandler(dir string) http.Handler {
	root := os.DirFS(dir)
	return &spaHandler{root: root, files: http.FileServerFS(root)}
}

func (h *spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name != "" {
		if info, err := fs.Stat(h.root, name); err == nil && !info.IsDir() {
			h.files.ServeHTTP(w, r)
			return
		}
	}

	index, err := fs.ReadFile(h.root, "index.html")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(index)
}

// notFound answers unmatched routes: API paths get a JSON 404, everything
// else goes to the browser shell.
func notFound(spa http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, apiPrefix) || r.URL.Path == "/api" || spa == nil {
			dto.WriteProblem(w, r, http.StatusNotFound, dto.MsgAPIRouteNotFound)
			return
		}
		spa.ServeHTTP(w, r)
	}
}
