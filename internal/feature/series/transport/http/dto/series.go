// Package dto はseriesフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"bytes"
	"encoding/json"

	"dovizkuru_backend/internal/api"
	"dovizkuru_backend/internal/feature/series/domain/entity"
)

// ToRequest は GET /api/tcmb のクエリパラメータ（生成モデル）をドメインの SeriesRequest に変換します。
// series, startDate, endDate のいずれかが空の場合は false を返します。
func ToRequest(p api.GetSeriesParams) (entity.SeriesRequest, bool) {
	if p.Series == "" || p.StartDate == "" || p.EndDate == "" {
		return entity.SeriesRequest{}, false
	}
	return entity.SeriesRequest{
		Codes:            entity.SplitCodes(p.Series),
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		Frequency:        deref(p.Frequency),
		AggregationTypes: deref(p.AggregationTypes),
		Formulas:         deref(p.Formulas),
	}, true
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// SeriesRecord は1行分の系列データです。カラム順を保ったJSONオブジェクトとして出力されます。
type SeriesRecord entity.Record

// MarshalJSON はフィールドの順序を保ってオブジェクトを書き出します。
func (r SeriesRecord) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		if len(f.Value) == 0 {
			b.WriteString("null")
		} else {
			b.Write(f.Value)
		}
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// SeriesResponse は GET /api/tcmb のレスポンスボディです。
type SeriesResponse struct {
	Items []SeriesRecord `json:"items"`
}

// NewSeriesResponse はレコードをレスポンスに変換します。itemsは常に配列（nullにはしない）です。
func NewSeriesResponse(records []entity.Record) SeriesResponse {
	items := make([]SeriesRecord, 0, len(records))
	for _, r := range records {
		items = append(items, SeriesRecord(r))
	}
	return SeriesResponse{Items: items}
}
