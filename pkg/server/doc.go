// Package server serves vlite apps to browsers over HTTP and WebSocket.
//
// Every WebSocket connection owns a live session: an in-memory document with
// a freshly mounted app. The browser forwards DOM events as JSON frames that
// name the target node by its host id (the data-hid attribute); the server
// dispatches them on the matching memdom element and answers with the
// re-rendered markup.
//
// # Wire Protocol
//
// Client to server:
//
//	{"type":"event","hid":"12","event":"click"}
//	{"type":"event","hid":"7","event":"input","value":"milk"}
//
// Server to client:
//
//	{"type":"render","html":"<div ...>...</div>"}
//	{"type":"error","code":"E401","message":"Unknown event target"}
//
// # Routes
//
//	GET /           page shell with the initial markup
//	GET /ws         live session
//	GET /client.js  browser runtime
//	GET /healthz    liveness probe
//	GET /metrics    Prometheus metrics (when enabled)
//
// The router is a chi.Router, so additional routes and middleware can be
// mounted by the embedding program:
//
//	srv := server.New(cfg, factory, server.WithLogger(logger))
//	r := srv.Router()
//	r.Get("/api/version", versionHandler)
package server
