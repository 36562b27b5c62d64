// Package usecase はEVDS系列データ取得と正規化のビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"

	"dovizkuru_backend/internal/feature/series/domain/entity"
	"dovizkuru_backend/internal/shared/apperror"
)

// MissingParameterMessage は必須パラメータ不足時のエラーメッセージです。
const MissingParameterMessage = "series, startDate and endDate parameters are required"

// SeriesRepository はEVDSなど統計データ提供元からの系列取得を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SeriesRepository interface {
	FetchSeries(ctx context.Context, req entity.SeriesRequest) (*entity.Table, error)
}

// seriesUsecase は系列データの取得・正規化のユースケースを定義します。
type seriesUsecase struct {
	repo SeriesRepository
}

// NewSeriesUsecase はseriesUsecaseの新しいインスタンスを生成します。
func NewSeriesUsecase(repo SeriesRepository) *seriesUsecase {
	return &seriesUsecase{repo: repo}
}

// GetSeries は指定された系列を取得し、カラム名を元の系列コードに戻したレコードを返します。
//
//   - 必須パラメータが欠けている場合は上流を呼ばずに MissingParameter を返す
//   - 上流の結果が空の場合は空スライスを返す（エラーではない）
//   - どの候補にも一致しない系列コードは黙って無視する（既知の制限）
func (su *seriesUsecase) GetSeries(ctx context.Context, req entity.SeriesRequest) ([]entity.Record, error) {
	if len(req.Codes) == 0 || req.StartDate == "" || req.EndDate == "" {
		return nil, apperror.New(apperror.MissingParameter, MissingParameterMessage)
	}

	slog.Info("fetching series", "series", req.Codes, "start", req.StartDate, "end", req.EndDate)

	table, err := su.repo.FetchSeries(ctx, req)
	if err != nil {
		return nil, apperror.Wrap(apperror.UpstreamFetch, "failed to fetch series data", err)
	}

	if table.Empty() {
		slog.Info("series response is empty", "series", req.Codes)
		return []entity.Record{}, nil
	}

	renames, unmatched := renameMap(table, req.Codes)
	if len(unmatched) > 0 {
		slog.Debug("series codes without a matching column", "codes", unmatched, "columns", table.Columns)
	}
	table.Rename(renames)

	return table.Records(), nil
}
