package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/vlite/internal/errors"
	"github.com/vango-dev/vlite/pkg/metrics"
)

const writeWait = 10 * time.Second

// HandleWebSocket upgrades the connection and runs a live session until the
// client disconnects.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error.
		s.opts.metrics.RecordWebSocketError("upgrade")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.config.MaxMessageSize)

	sess, err := newLiveSession(s.factory)
	if err != nil {
		s.logger.Error("session mount failed", "error", err, "request_id", requestID(r))
		_ = s.write(conn, errorMessage(errors.FromError(err, "E203")))
		return
	}

	s.mu.Lock()
	s.sessions[conn] = sess
	s.mu.Unlock()
	s.opts.metrics.SessionOpened()
	logger := s.logger.With("session", sess.id)
	logger.Debug("session opened", "remote", r.RemoteAddr)

	defer func() {
		s.mu.Lock()
		delete(s.sessions, conn)
		s.mu.Unlock()
		sess.close()
		s.opts.metrics.SessionClosed()
		logger.Debug("session closed")
	}()

	if err := s.write(conn, ServerMessage{Type: TypeRender, HTML: sess.html()}); err != nil {
		s.opts.metrics.RecordWebSocketError("write")
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("read failed", "error", err)
				s.opts.metrics.RecordWebSocketError("read")
			}
			return
		}

		reply := s.handleFrame(r.Context(), sess, data)
		if err := s.write(conn, reply); err != nil {
			logger.Warn("write failed", "error", err)
			s.opts.metrics.RecordWebSocketError("write")
			return
		}
	}
}

// handleFrame decodes one client frame, applies it and builds the reply.
func (s *Server) handleFrame(ctx context.Context, sess *liveSession, data []byte) ServerMessage {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.opts.metrics.RecordEvent(outcomeMalformed)
		return errorMessage(errors.New("E402").Wrap(err))
	}

	ctx, span := metrics.StartSpan(ctx, s.opts.tracer, "vlite.event",
		attribute.String("vlite.session", sess.id),
		attribute.String("vlite.event.type", msg.Event),
		attribute.String("vlite.event.hid", msg.HID),
	)
	outcome, err := sess.handle(ctx, msg)
	span.SetAttributes(attribute.String("vlite.event.outcome", outcome))
	metrics.EndSpan(span, err)
	s.opts.metrics.RecordEvent(outcome)

	if err != nil {
		s.logger.Debug("event rejected", "session", sess.id, "outcome", outcome, "error", err)
		if outcome != outcomeFailed {
			return errorMessage(err)
		}
		// The previous tree was already cleared; resend whatever is left.
	}
	return ServerMessage{Type: TypeRender, HTML: sess.html()}
}

func (s *Server) write(conn *websocket.Conn, msg ServerMessage) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(msg)
}

func errorMessage(err error) ServerMessage {
	msg := ServerMessage{Type: TypeError, Code: errors.CodeOf(err), Message: err.Error()}
	var ve *errors.VliteError
	if errors.As(err, &ve) {
		msg.Message = ve.Message
	}
	return msg
}

func requestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}

func deadline(ctx context.Context) time.Time {
	if d, ok := ctx.Deadline(); ok {
		return d
	}
	return time.Now().Add(writeWait)
}
