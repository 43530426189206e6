package example

import (
	"net/http"
	"path/filepath"
)

// RobotsTxt disallows everything below /private/.
const RobotsTxt = `User-agent: *
Disallow: /private/
`

type server struct {
	root string
}

// NewServer serves the html documents below root and a fixed robots.txt.
func NewServer(root string) http.Handler {
	return &server{
		root: root,
	}
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/robots.txt":
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(RobotsTxt))
	case "/":
		http.ServeFile(w, r, filepath.Join(s.root, "index.html"))
	default:
		http.ServeFile(w, r, filepath.Join(s.root, filepath.FromSlash(r.URL.Path)))
	}
}
