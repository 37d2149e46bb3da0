// Package csvio はResultTableの区切りファイル入出力を提供します。
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"research_backend/internal/feature/research/domain/entity"
)

// CompanyNameColumn はアップロードCSVに必須の列名です。
const CompanyNameColumn = "company_name"

// ExportHeader はエクスポートCSVの10列のヘッダーです。1社につき1行です。
var ExportHeader = []string{
	"company",
	"profile", "profile_confidence", "profile_source",
	"sector", "sector_confidence", "sector_source",
	"objectives", "objectives_confidence", "objectives_source",
}

// ReadCompanyNames はアップロードされたCSVからcompany_name列の値を行順に読み取ります。
// 列名の大文字小文字は区別しません。列が存在しない場合はエラーを返します。
func ReadCompanyNames(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	col := -1
	for i, name := range header {
		// 先頭セルのBOMを除去してから比較
		name = strings.TrimPrefix(name, "\ufeff")
		if strings.EqualFold(strings.TrimSpace(name), CompanyNameColumn) {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("csv must contain a %q column", CompanyNameColumn)
	}

	var names []string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		if col >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[col])
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// WriteResultTable はResultTableを10列のCSVとして書き出します。
// ヘッダー行あり・UTF-8・1社につき1行で、行順はテーブルの順序をそのまま保ちます。
func WriteResultTable(w io.Writer, table entity.ResultTable) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(ExportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, record := range table {
		row := []string{
			record.CompanyName,
			record.Profile.Value, strconv.Itoa(record.Profile.Confidence), record.Profile.Source,
			record.Sector.Value, strconv.Itoa(record.Sector.Confidence), record.Sector.Source,
			record.Objectives.Value, strconv.Itoa(record.Objectives.Confidence), record.Objectives.Source,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadResultTable はWriteResultTableが書き出した形式のCSVを読み戻します。
func ReadResultTable(r io.Reader) (entity.ResultTable, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if len(header) != len(ExportHeader) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(ExportHeader), len(header))
	}

	var table entity.ResultTable
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		profileConf, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("parse profile_confidence %q: %w", row[2], err)
		}
		sectorConf, err := strconv.Atoi(row[5])
		if err != nil {
			return nil, fmt.Errorf("parse sector_confidence %q: %w", row[5], err)
		}
		objectivesConf, err := strconv.Atoi(row[8])
		if err != nil {
			return nil, fmt.Errorf("parse objectives_confidence %q: %w", row[8], err)
		}

		table = append(table, entity.CompanyRecord{
			CompanyName: row[0],
			Profile:     entity.FieldResult{Value: row[1], Confidence: profileConf, Source: row[3]},
			Sector:      entity.FieldResult{Value: row[4], Confidence: sectorConf, Source: row[6]},
			Objectives:  entity.FieldResult{Value: row[7], Confidence: objectivesConf, Source: row[9]},
		})
	}
	return table, nil
}
