package server

import (
	"crypto/sha256"
	"fmt"
	"net/http"
)

// clientScript is the browser runtime. It swaps the body on every render
// frame and forwards events from elements carrying data-on-<event> markers.
const clientScript = `(function () {
  'use strict';
  var root = document.getElementById('vlite-root');
  var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
  var ws = new WebSocket(proto + '//' + location.host + '/ws');

  ws.onmessage = function (e) {
    var msg;
    try { msg = JSON.parse(e.data); } catch (err) { return; }
    if (msg.type === 'render') {
      root.innerHTML = msg.html;
    } else if (msg.type === 'error') {
      console.error('[vlite]', msg.code, msg.message || '');
    }
  };

  ['click', 'dblclick', 'input', 'change', 'submit', 'keydown', 'keyup'].forEach(function (type) {
    root.addEventListener(type, function (e) {
      var el = e.target.closest('[data-on-' + type + ']');
      if (!el || ws.readyState !== WebSocket.OPEN) { return; }
      if (type === 'submit') { e.preventDefault(); }
      var value = el.value !== undefined ? String(el.value) : '';
      if (type === 'keydown' || type === 'keyup') { value = e.key; }
      ws.send(JSON.stringify({type: 'event', hid: el.dataset.hid, event: type, value: value}));
    });
  });
})();
`

var clientETag = func() string {
	sum := sha256.Sum256([]byte(clientScript))
	return fmt.Sprintf("%q", fmt.Sprintf("%x", sum[:8]))
}()

func (s *Server) serveClient(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("ETag", clientETag)
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=0, must-revalidate")

	if r.Header.Get("If-None-Match") == clientETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	_, _ = w.Write([]byte(clientScript))
}
