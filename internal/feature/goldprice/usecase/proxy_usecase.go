// Package usecase はgold-apiへのプロキシ処理のビジネスロジックを実装します。
package usecase

import (
	"context"
	"net/url"
	"time"

	"dovizkuru_backend/internal/feature/goldprice/domain/entity"
)

const (
	// PriceTimeout はスポット価格取得のタイムアウトです。
	PriceTimeout = 10 * time.Second
	// HistoryTimeout は価格履歴取得のタイムアウトです。
	HistoryTimeout = 30 * time.Second
)

// PriceUpstream は資格情報を付与して上流の価格APIを呼び出すクライアントを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type PriceUpstream interface {
	Get(ctx context.Context, path string, query url.Values, timeout time.Duration) (*entity.UpstreamResponse, error)
}

// proxyUsecase は価格・価格履歴のプロキシ処理を定義します。
type proxyUsecase struct {
	upstream PriceUpstream
}

// NewProxyUsecase はproxyUsecaseの新しいインスタンスを生成します。
func NewProxyUsecase(upstream PriceUpstream) *proxyUsecase {
	return &proxyUsecase{upstream: upstream}
}

// GetPrice は指定シンボルのスポット価格を上流の /price/{symbol} から取得します。
func (pu *proxyUsecase) GetPrice(ctx context.Context, symbol string) (*entity.UpstreamResponse, error) {
	return pu.upstream.Get(ctx, "/price/"+url.PathEscape(symbol), nil, PriceTimeout)
}

// GetHistory は上流の /history を呼び出します。
// 指定されたパラメータのみを送信し、未指定のものは空値としても送りません。
func (pu *proxyUsecase) GetHistory(ctx context.Context, q entity.HistoryQuery) (*entity.UpstreamResponse, error) {
	return pu.upstream.Get(ctx, "/history", historyValues(q), HistoryTimeout)
}

// historyValues は値が指定されたパラメータだけをクエリに詰めます。
func historyValues(q entity.HistoryQuery) url.Values {
	v := url.Values{}
	for _, p := range []struct{ name, value string }{
		{"symbol", q.Symbol},
		{"startTimestamp", q.StartTimestamp},
		{"endTimestamp", q.EndTimestamp},
		{"groupBy", q.GroupBy},
		{"aggregation", q.Aggregation},
		{"orderBy", q.OrderBy},
	} {
		if p.value != "" {
			v.Set(p.name, p.value)
		}
	}
	return v
}
