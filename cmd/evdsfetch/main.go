// Command evdsfetch は指定したEVDS系列と日付範囲を取得し、JSONとして出力します。
//
// 使い方:
//
//	evdsfetch -series TP.DK.USD.A.YTL,TP.DK.EUR.A.YTL -start-date 01-01-2019 -end-date 01-01-2020
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"dovizkuru_backend/internal/app/di"
	"dovizkuru_backend/internal/feature/series/domain/entity"
	"dovizkuru_backend/internal/feature/series/transport/http/dto"
	"dovizkuru_backend/internal/feature/series/usecase"
	"dovizkuru_backend/internal/platform/externalapi/evds"
	"dovizkuru_backend/internal/platform/logger"
)

// options はコマンドライン引数の解析結果です。
type options struct {
	Series    []string
	StartDate string
	EndDate   string
	APIKey    string
	Output    string
	LogLevel  string
}

// result は出力JSONの形です。
type result struct {
	Series    []string           `json:"series"`
	StartDate string             `json:"startDate"`
	EndDate   string             `json:"endDate"`
	Rows      []dto.SeriesRecord `json:"rows"`
}

func main() {
	_ = godotenv.Load()

	opts, err := parseArgs(os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	slog.SetDefault(logger.NewWithWriter(os.Stderr, opts.LogLevel))

	cfg := evds.LoadConfig()
	cfg.APIKey = opts.APIKey
	uc := usecase.NewSeriesUsecase(di.NewSeriesRepository(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := run(ctx, uc, opts, os.Stdout); err != nil {
		slog.Error("evds fetch failed", "error", err)
		os.Exit(1)
	}
}

// parseArgs は引数を解析します。系列コードは -series（カンマ区切り）と位置引数の両方から受け付けます。
func parseArgs(args []string, getenv func(string) string) (options, error) {
	var (
		opts   options
		series string
	)
	fs := flag.NewFlagSet("evdsfetch", flag.ContinueOnError)
	fs.StringVar(&series, "series", "", "EVDS series codes, comma separated")
	fs.StringVar(&opts.StartDate, "start-date", "", "start date (DD-MM-YYYY)")
	fs.StringVar(&opts.EndDate, "end-date", "", "end date (DD-MM-YYYY); defaults to start date")
	fs.StringVar(&opts.APIKey, "api-key", getenv("EVDS_API_KEY"), "EVDS API key (default: EVDS_API_KEY)")
	fs.StringVar(&opts.Output, "output", "", "write JSON to this file instead of stdout")
	fs.StringVar(&opts.LogLevel, "log-level", "warn", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	for _, arg := range append([]string{series}, fs.Args()...) {
		for _, code := range entity.SplitCodes(arg) {
			if code = strings.TrimSpace(code); code != "" {
				opts.Series = append(opts.Series, code)
			}
		}
	}

	var errs []string
	if len(opts.Series) == 0 {
		errs = append(errs, "at least one series code is required")
	}
	if opts.StartDate == "" {
		errs = append(errs, "-start-date is required")
	}
	if opts.APIKey == "" {
		errs = append(errs, "EVDS API key is required (-api-key or EVDS_API_KEY)")
	}
	if len(errs) > 0 {
		return options{}, errors.New(strings.Join(errs, "; "))
	}
	if opts.EndDate == "" {
		opts.EndDate = opts.StartDate
	}
	return opts, nil
}

// SeriesUsecase は取得処理のインターフェースです。
type SeriesUsecase interface {
	GetSeries(ctx context.Context, req entity.SeriesRequest) ([]entity.Record, error)
}

// run は系列を取得し、-output指定時はファイルへ、それ以外はstdoutへJSONを書き出します。
func run(ctx context.Context, uc SeriesUsecase, opts options, stdout io.Writer) error {
	records, err := uc.GetSeries(ctx, entity.SeriesRequest{
		Codes:     opts.Series,
		StartDate: opts.StartDate,
		EndDate:   opts.EndDate,
	})
	if err != nil {
		return err
	}

	res := result{
		Series:    opts.Series,
		StartDate: opts.StartDate,
		EndDate:   opts.EndDate,
		Rows:      dto.NewSeriesResponse(records).Items,
	}

	if opts.Output == "" {
		return writeJSON(stdout, res)
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := writeJSON(f, res); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	fmt.Fprintf(stdout, "saved to %s\n", opts.Output)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
