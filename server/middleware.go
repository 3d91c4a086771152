package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Request id plumbing.
const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// requestID tags each request with a fresh UUID, echoed in X-Request-ID.
func (s *Server) requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := uuid.New().String()
		ctx.Set(requestIDKey, id)
		ctx.Header(requestIDHeader, id)
		ctx.Next()
	}
}

// accessLog writes one structured line per request.
func (s *Server) accessLog() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		entry := s.logger(ctx).WithFields(logrus.Fields{
			"method":  ctx.Request.Method,
			"route":   ctx.FullPath(),
			"status":  ctx.Writer.Status(),
			"elapsed": time.Since(start),
		})
		if ctx.Writer.Status() >= 500 {
			entry.Error("request failed")
			return
		}
		entry.Debug("request served")
	}
}

// limitBody caps the bytes a handler can read from the request body.
func (s *Server) limitBody() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if s.cfg.MaxBodyBytes > 0 && ctx.Request.Body != nil {
			ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, s.cfg.MaxBodyBytes)
		}
		ctx.Next()
	}
}

// logger returns the server log with the request id attached.
func (s *Server) logger(ctx *gin.Context) logrus.FieldLogger {
	return s.log.WithField(requestIDKey, ctx.GetString(requestIDKey))
}
