// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dovizkuru_backend/internal/api"
)

// Backend はヘルスレスポンスで名乗るバックエンド実装名です。
const Backend = "go-gin"

// NewHealth は /health エンドポイントのハンドラーを返します。
// HEADはボディなし200、OPTIONSは204、それ以外はステータスJSONを返します。
func NewHealth(backend string) gin.HandlerFunc {
	body := api.HealthResponse{Status: "ok", Backend: backend}
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusOK, body)
		}
	}
}
