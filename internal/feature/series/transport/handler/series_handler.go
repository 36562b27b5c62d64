// Package handler はseriesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"dovizkuru_backend/internal/api"
	"dovizkuru_backend/internal/feature/series/domain/entity"
	"dovizkuru_backend/internal/feature/series/transport/http/dto"
	"dovizkuru_backend/internal/feature/series/usecase"
	"dovizkuru_backend/internal/shared/apperror"
)

// SeriesUsecase は系列データ取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SeriesUsecase interface {
	GetSeries(ctx context.Context, req entity.SeriesRequest) ([]entity.Record, error)
}

// SeriesHandler はEVDS系列データのHTTPリクエストを処理します。
type SeriesHandler struct {
	uc SeriesUsecase
}

// NewSeriesHandler は指定されたusecaseでSeriesHandlerの新しいインスタンスを生成します。
func NewSeriesHandler(uc SeriesUsecase) *SeriesHandler {
	return &SeriesHandler{uc: uc}
}

// GetSeries は系列コードと日付範囲を受け取り、正規化したレコードをJSONで返します。
//
// エンドポイント例:
// GET /api/tcmb?series=TP.DK.USD.A,TP.DK.EUR.A&startDate=01-01-2024&endDate=31-01-2024
func (h *SeriesHandler) GetSeries(c *gin.Context) {
	var params api.GetSeriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		slog.Warn("series query binding failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.MissingParameterMessage})
		return
	}
	req, ok := dto.ToRequest(params)
	if !ok {
		slog.Warn("series validation failed", "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.MissingParameterMessage})
		return
	}

	records, err := h.uc.GetSeries(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSeriesResponse(records))
}

// writeError はエラーを構造化JSONに変換して返します。
// 上流のエラーレスポンス本文はログにのみ出力し、クライアントには返しません。
func writeError(c *gin.Context, err error) {
	var respErr *apperror.ResponseError
	if errors.As(err, &respErr) {
		slog.Error("upstream error response",
			"provider", respErr.Provider,
			"status", respErr.StatusCode,
			"body", string(respErr.Body),
		)
	}

	var ae *apperror.Error
	if !errors.As(err, &ae) {
		slog.Error("series request failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	slog.Error("series request failed", "kind", ae.Kind.String(), "error", err)
	res := api.ErrorResponse{Error: ae.Message}
	if d := ae.DetailText(); d != "" {
		res.Detail = &d
	}
	c.JSON(ae.HTTPStatus(), res)
}
