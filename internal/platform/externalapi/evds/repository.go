package evds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"dovizkuru_backend/internal/feature/series/domain/entity"
	"dovizkuru_backend/internal/feature/series/usecase"
	"dovizkuru_backend/internal/shared/apperror"
)

// maxErrorBody caps how much of an error response is kept for logging.
const maxErrorBody = 64 << 10

// Client は EVDS API から系列データを取得する SeriesRepository 実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// Client が SeriesRepository を実装していることをコンパイル時に検証します。
var _ usecase.SeriesRepository = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントで Client を生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// FetchSeries issues one EVDS request for all codes in req and returns the result as a Table.
// Dates are passed through as given; EVDS expects DD-MM-YYYY.
func (c *Client) FetchSeries(ctx context.Context, req entity.SeriesRequest) (*entity.Table, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.seriesURL(req), nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("key", c.cfg.APIKey)
	httpReq.Header.Set("Accept", "application/json")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return nil, &apperror.ResponseError{Provider: "evds", StatusCode: res.StatusCode, Body: body}
	}

	var body seriesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("evds: decode response: %w", err)
	}

	table, err := toTable(body.Items)
	if err != nil {
		return nil, fmt.Errorf("evds: %w", err)
	}
	return table, nil
}

// seriesURL builds the EVDS query URL. EVDS takes its parameters inside the path,
// e.g. /series=TP.DK.USD.A-TP.DK.EUR.A&startDate=01-01-2024&endDate=31-01-2024&type=json.
func (c *Client) seriesURL(req entity.SeriesRequest) string {
	codes := make([]string, len(req.Codes))
	for i, code := range req.Codes {
		codes[i] = escapeValue(code)
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(c.cfg.BaseURL, "/"))
	b.WriteString("/series=")
	b.WriteString(strings.Join(codes, "-"))
	writeParam(&b, "startDate", req.StartDate)
	writeParam(&b, "endDate", req.EndDate)
	writeParam(&b, "type", "json")
	writeParam(&b, "frequency", req.Frequency)
	writeParam(&b, "aggregationTypes", req.AggregationTypes)
	writeParam(&b, "formulas", req.Formulas)
	return b.String()
}

func writeParam(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString("&")
	b.WriteString(name)
	b.WriteString("=")
	b.WriteString(escapeValue(value))
}

// pathParamEscaper は PathEscape がパスセグメント内で残す区切り文字をエスケープします。
var pathParamEscaper = strings.NewReplacer("&", "%26", "=", "%3D", "+", "%2B")

// escapeValue escapes a caller-supplied value so it cannot add or override EVDS parameters.
func escapeValue(v string) string {
	return pathParamEscaper.Replace(url.PathEscape(v))
}
