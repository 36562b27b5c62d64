package usecase

import (
	"strings"

	"dovizkuru_backend/internal/feature/series/domain/entity"
)

// ytlSuffix はEVDSが一部の系列のカラム名末尾に付与する通貨サフィックスです。
const ytlSuffix = "_YTL"

// columnCandidates は系列コードから上流テーブルのカラム名候補を生成する関数のリストです。
// 先頭から順に試し、最初に見つかった候補を採用します。順序を変えると出力が変わるため注意。
var columnCandidates = []func(code string) string{
	sanitize,
	func(code string) string { return sanitize(code) + ytlSuffix },
	func(code string) string { return strings.ReplaceAll(sanitize(code), "-", "_") },
}

// sanitize は系列コードの "." を "_" に置換します（EVDSのカラム命名規則）。
func sanitize(code string) string {
	return strings.ReplaceAll(code, ".", "_")
}

// matchColumn は系列コードに対応するテーブルのカラム名を返します。
// どの候補にも一致しない場合は false を返します。
func matchColumn(t *entity.Table, code string) (string, bool) {
	for _, candidate := range columnCandidates {
		name := candidate(code)
		if t.HasColumn(name) {
			return name, true
		}
	}
	return "", false
}

// renameMap は上流のカラム名から呼び出し元の系列コードへのリネーム表を作成します。
// 一致しなかったコードは表に含まれず、戻り値の unmatched に入ります。
func renameMap(t *entity.Table, codes []string) (renames map[string]string, unmatched []string) {
	renames = make(map[string]string, len(codes))
	for _, code := range codes {
		name, ok := matchColumn(t, code)
		if !ok {
			unmatched = append(unmatched, code)
			continue
		}
		renames[name] = code
	}
	return renames, unmatched
}
