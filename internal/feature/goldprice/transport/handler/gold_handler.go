// Package handler はgoldpriceフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"dovizkuru_backend/internal/api"
	"dovizkuru_backend/internal/feature/goldprice/domain/entity"
	"dovizkuru_backend/internal/shared/apperror"
)

// ProxyUsecase は価格APIプロキシのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ProxyUsecase interface {
	GetPrice(ctx context.Context, symbol string) (*entity.UpstreamResponse, error)
	GetHistory(ctx context.Context, q entity.HistoryQuery) (*entity.UpstreamResponse, error)
}

// GoldHandler はgold-apiへのプロキシリクエストを処理します。
type GoldHandler struct {
	uc ProxyUsecase
}

// NewGoldHandler は指定されたusecaseでGoldHandlerの新しいインスタンスを生成します。
func NewGoldHandler(uc ProxyUsecase) *GoldHandler {
	return &GoldHandler{uc: uc}
}

// GetPrice は指定シンボルのスポット価格を上流から取得し、そのまま返します。
//
// エンドポイント例:
// GET /api/gold/price/XAU
func (h *GoldHandler) GetPrice(c *gin.Context) {
	res, err := h.uc.GetPrice(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		writeError(c, err)
		return
	}
	relay(c, res)
}

// GetHistory は価格履歴を上流から取得し、そのまま返します。
// 指定されたクエリパラメータのみ上流へ転送します。同名パラメータが複数ある場合は先頭の値を使います。
// クエリの内容を理由に400を返すことはありません。
//
// エンドポイント例:
// GET /api/gold/history?symbol=XAU&groupBy=day&aggregation=avg&orderBy=asc
func (h *GoldHandler) GetHistory(c *gin.Context) {
	var params api.GetGoldHistoryParams
	query := firstValues(c.Request.URL.Query())
	for name, dest := range map[string]**string{
		"symbol":         &params.Symbol,
		"startTimestamp": &params.StartTimestamp,
		"endTimestamp":   &params.EndTimestamp,
		"groupBy":        &params.GroupBy,
		"aggregation":    &params.Aggregation,
		"orderBy":        &params.OrderBy,
	} {
		if err := runtime.BindQueryParameter("form", true, false, name, query, dest); err != nil {
			// 未指定として扱う
			slog.Warn("history query parameter ignored", "param", name, "error", err)
			*dest = nil
		}
	}

	res, err := h.uc.GetHistory(c.Request.Context(), entity.HistoryQuery{
		Symbol:         deref(params.Symbol),
		StartTimestamp: deref(params.StartTimestamp),
		EndTimestamp:   deref(params.EndTimestamp),
		GroupBy:        deref(params.GroupBy),
		Aggregation:    deref(params.Aggregation),
		OrderBy:        deref(params.OrderBy),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	relay(c, res)
}

// relay は上流のステータス・ボディ・Content-Typeを変更せずに返します。
// 上流がContent-Typeを返さなかった場合は付与しません。その他のヘッダーはコピーしません。
func relay(c *gin.Context, res *entity.UpstreamResponse) {
	if res.ContentType != "" {
		c.Data(res.StatusCode, res.ContentType, res.Body)
		return
	}
	// net/httpによるContent-Typeの自動判定を抑止する
	c.Writer.Header()["Content-Type"] = nil
	c.Status(res.StatusCode)
	if _, err := c.Writer.Write(res.Body); err != nil {
		slog.Warn("failed to write relayed body", "error", err)
	}
}

// firstValues は各パラメータの先頭の値だけを残します。
func firstValues(q url.Values) url.Values {
	out := make(url.Values, len(q))
	for k, v := range q {
		if len(v) > 0 {
			out[k] = v[:1]
		}
	}
	return out
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// writeError はエラーを構造化JSONに変換して返します。
// 資格情報未設定は500、通信失敗は502になります。
func writeError(c *gin.Context, err error) {
	var ae *apperror.Error
	if !errors.As(err, &ae) {
		slog.Error("gold proxy request failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	slog.Error("gold proxy request failed", "kind", ae.Kind.String(), "error", err)
	res := api.ErrorResponse{Error: ae.Message}
	if d := ae.DetailText(); d != "" {
		res.Detail = &d
	}
	c.JSON(ae.HTTPStatus(), res)
}
