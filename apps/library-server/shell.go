package libraryserver

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"video-library/shared/config"
)

//go:embed web/shell.html.tmpl
var webFS embed.FS

type shellData struct {
	Title      string
	ClientPath string
}

// shellRenderer serves the single-page application shell. A configured
// shell file takes precedence over the embedded template.
type shellRenderer struct {
	file     string
	rendered []byte
}

func newShellRenderer(cfg *config.ServerConfig) (*shellRenderer, error) {
	if cfg.ShellFile != "" {
		return &shellRenderer{file: cfg.ShellFile}, nil
	}

	tmpl, err := template.ParseFS(webFS, "web/shell.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse shell template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, shellData{Title: cfg.ShellTitle, ClientPath: "/dist/client/"}); err != nil {
		return nil, fmt.Errorf("failed to render shell template: %w", err)
	}
	return &shellRenderer{rendered: buf.Bytes()}, nil
}

func (s *shellRenderer) serve(w http.ResponseWriter, r *http.Request) {
	if s.file != "" {
		http.ServeFile(w, r, s.file)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(s.rendered)
	}
}
