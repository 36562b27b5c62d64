package goldapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dovizkuru_backend/internal/feature/goldprice/domain/entity"
	"dovizkuru_backend/internal/feature/goldprice/usecase"
	"dovizkuru_backend/internal/shared/apperror"
)

const (
	// apiKeyHeader is the header gold-api reads the credential from.
	apiKeyHeader = "x-api-key"

	MissingCredentialMessage = "GOLD_API_KEY is not configured"
	ProxyFailedMessage       = "gold api proxy failed"
)

// Client はgold-apiへリクエストを中継するPriceUpstream実装です。
// レスポンスは解釈せず、ステータス・ボディ・Content-Typeをそのまま返します。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがPriceUpstreamを実装していることをコンパイル時に検証します。
var _ usecase.PriceUpstream = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Get calls path on the upstream with the credential header and returns the raw reply.
// Without a credential it fails with MissingCredential before touching the network.
// Transport failures become ProxyTransport errors; HTTP error statuses are not errors.
func (c *Client) Get(ctx context.Context, path string, query url.Values, timeout time.Duration) (*entity.UpstreamResponse, error) {
	if !c.cfg.Enabled() {
		return nil, apperror.New(apperror.MissingCredential, MissingCredentialMessage)
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	u := strings.TrimRight(c.cfg.BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, apperror.Wrap(apperror.ProxyTransport, ProxyFailedMessage, err)
	}
	req.Header.Set(apiKeyHeader, c.cfg.APIKey)

	res, err := c.client.Do(req)
	if err != nil {
		slog.Error("gold api request failed", "path", path, "error", err)
		return nil, apperror.Wrap(apperror.ProxyTransport, ProxyFailedMessage, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		slog.Error("gold api response read failed", "path", path, "status", res.StatusCode, "error", err)
		return nil, apperror.Wrap(apperror.ProxyTransport, ProxyFailedMessage, err)
	}

	if res.StatusCode >= 400 {
		slog.Warn("gold api returned error status", "path", path, "status", res.StatusCode)
	}

	return &entity.UpstreamResponse{
		StatusCode:  res.StatusCode,
		ContentType: res.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
