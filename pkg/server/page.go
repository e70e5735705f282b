package server

import (
	"html/template"
	"net/http"

	"github.com/vango-dev/vlite/internal/errors"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<div id="vlite-root">{{.Body}}</div>
<script src="/client.js" defer></script>
</body>
</html>
`))

type pageData struct {
	Title string
	Body  template.HTML
}

// handlePage renders the initial markup of a throwaway session. The live
// session opened by the client runtime replaces it on connect.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess, err := newLiveSession(s.factory)
	if err != nil {
		s.logger.Error("page render failed", "error", err, "request_id", requestID(r))
		http.Error(w, errors.FromError(err, "E203").Error(), http.StatusInternalServerError)
		return
	}
	body := sess.html()
	sess.close()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := pageTemplate.Execute(w, pageData{Title: s.config.Title, Body: template.HTML(body)}); err != nil {
		s.logger.Warn("page write failed", "error", err)
	}
}
