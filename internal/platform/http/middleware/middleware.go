// Package middleware はgin用の共通ミドルウェアを提供します。
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dovizkuru_backend/internal/api"
)

// RequestIDHeader はリクエストIDを受け渡すヘッダー名です。
const RequestIDHeader = "X-Request-ID"

// requestIDKey はgin.ContextにリクエストIDを格納するキーです。
const requestIDKey = "requestID"

// maxRequestIDLen を超える受信IDは信用せず新規発行します。
const maxRequestIDLen = 128

// RequestID は受信したX-Request-IDを引き継ぐか、なければUUIDを発行します。
// IDはレスポンスヘッダーにも付与されます。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID はコンテキストに格納されたリクエストIDを返します。
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// AccessLog はリクエストごとにメソッド・パス・ステータス・所要時間をslogで記録します。
// クエリ文字列は記録しません。
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}
		slog.Log(c.Request.Context(), level, "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", time.Since(start).String(),
			"requestID", GetRequestID(c),
		)
	}
}

// Recovery はpanicを捕捉して500の構造化エラーを返します。
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		slog.Error("panic recovered", "error", err, "path", c.Request.URL.Path, "requestID", GetRequestID(c))
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	})
}
