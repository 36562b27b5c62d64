package usecase

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dovizkuru_backend/internal/feature/goldprice/domain/entity"
)

// mockPriceUpstream はPriceUpstreamインターフェースのモック実装です。
type mockPriceUpstream struct {
	GetFunc  func(ctx context.Context, path string, query url.Values, timeout time.Duration) (*entity.UpstreamResponse, error)
	GetCalls int
}

func (m *mockPriceUpstream) Get(ctx context.Context, path string, query url.Values, timeout time.Duration) (*entity.UpstreamResponse, error) {
	m.GetCalls++
	return m.GetFunc(ctx, path, query, timeout)
}

func TestProxyUsecase_GetPrice(t *testing.T) {
	t.Parallel()

	want := &entity.UpstreamResponse{StatusCode: 200, ContentType: "application/json", Body: []byte(`{"price":2650.1}`)}
	upstream := &mockPriceUpstream{
		GetFunc: func(ctx context.Context, path string, query url.Values, timeout time.Duration) (*entity.UpstreamResponse, error) {
			assert.Equal(t, "/price/XAU", path)
			assert.Empty(t, query)
			assert.Equal(t, PriceTimeout, timeout)
			return want, nil
		},
	}

	got, err := NewProxyUsecase(upstream).GetPrice(context.Background(), "XAU")

	require.NoError(t, err)
	assert.Same(t, want, got)
	assert.Equal(t, 1, upstream.GetCalls)
}

func TestProxyUsecase_GetHistory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    entity.HistoryQuery
		expected url.Values
	}{
		{
			name:     "only supplied parameters",
			query:    entity.HistoryQuery{Symbol: "XAU", GroupBy: "day"},
			expected: url.Values{"symbol": {"XAU"}, "groupBy": {"day"}},
		},
		{
			name: "all parameters",
			query: entity.HistoryQuery{
				Symbol: "XAG", StartTimestamp: "631152000", EndTimestamp: "1735689600",
				GroupBy: "day", Aggregation: "avg", OrderBy: "asc",
			},
			expected: url.Values{
				"symbol": {"XAG"}, "startTimestamp": {"631152000"}, "endTimestamp": {"1735689600"},
				"groupBy": {"day"}, "aggregation": {"avg"}, "orderBy": {"asc"},
			},
		},
		{
			name:     "no parameters",
			query:    entity.HistoryQuery{},
			expected: url.Values{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			upstream := &mockPriceUpstream{
				GetFunc: func(ctx context.Context, path string, query url.Values, timeout time.Duration) (*entity.UpstreamResponse, error) {
					assert.Equal(t, "/history", path)
					assert.Equal(t, tt.expected, query)
					assert.Equal(t, HistoryTimeout, timeout)
					return &entity.UpstreamResponse{StatusCode: 200}, nil
				},
			}

			_, err := NewProxyUsecase(upstream).GetHistory(context.Background(), tt.query)
			require.NoError(t, err)
		})
	}
}

func TestProxyUsecase_PropagatesError(t *testing.T) {
	t.Parallel()

	errUpstream := errors.New("boom")
	upstream := &mockPriceUpstream{
		GetFunc: func(ctx context.Context, path string, query url.Values, timeout time.Duration) (*entity.UpstreamResponse, error) {
			return nil, errUpstream
		},
	}

	_, err := NewProxyUsecase(upstream).GetPrice(context.Background(), "XAU")
	assert.ErrorIs(t, err, errUpstream)
}
