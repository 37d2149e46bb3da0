package usecase

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"research_backend/internal/feature/research/domain"
	"research_backend/internal/feature/research/domain/entity"
)

// LLM応答のセクションラベルです。大文字小文字・マークダウン装飾は区別しません。
// プロバイダはラベル語彙を契約として保証しないため、ここでの許容規則は
// 近似的な安全網であり、認識できないセクションは空フィールドに落とします。
var (
	profileLabel    = regexp.MustCompile(`(?i)^[\s#*>\-\d.]*company\s+profile\b[*\s]*[:：]?[*\s]*(.*)$`)
	sectorLabel     = regexp.MustCompile(`(?i)^[\s#*>\-\d.]*industry\s+sector\b[*\s]*[:：]?[*\s]*(.*)$`)
	objectivesLabel = regexp.MustCompile(`(?i)^[\s#*>\-\d.]*(?:strategic|2025)\s+objectives\b[*\s]*[:：]?[*\s]*(.*)$`)
	confidenceLabel = regexp.MustCompile(`(?i)^[\s#*>\-]*confidence\b[*\s]*[:：]?[*\s]*(.*)$`)
	sourceLabel     = regexp.MustCompile(`(?i)^[\s#*>\-]*source\b[*\s]*[:：]?[*\s]*(.*)$`)

	confidenceNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)
	markdownLink     = regexp.MustCompile(`\[[^\]]*\]\(([^)]+)\)`)
)

// section は解析中の1セクション分の蓄積状態です。
type section struct {
	lines      []string
	confidence int
	source     string
}

// ParseRecord はLLMの生テキストから3フィールドを抽出してCompanyRecordを構築します。
//
// セクションが欠落・解析不能な場合でもレコードは生成され、該当フィールドは
// 空値・信頼度0・ソース空になります。3フィールドすべてが抽出できない場合のみ
// domain.ErrParseFailureを返します。同じ入力に対して常に同じ結果を返します。
func ParseRecord(companyName, rawText string) (*entity.CompanyRecord, error) {
	sections := map[string]*section{
		"profile":    {},
		"sector":     {},
		"objectives": {},
	}

	var current *section
	for _, line := range strings.Split(rawText, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if m := profileLabel.FindStringSubmatch(line); m != nil {
			current = sections["profile"]
			current.append(m[1])
			continue
		}
		if m := sectorLabel.FindStringSubmatch(line); m != nil {
			current = sections["sector"]
			current.append(m[1])
			continue
		}
		if m := objectivesLabel.FindStringSubmatch(line); m != nil {
			current = sections["objectives"]
			current.append(m[1])
			continue
		}

		if current == nil {
			continue
		}
		if m := confidenceLabel.FindStringSubmatch(line); m != nil {
			current.confidence = normalizeConfidence(m[1])
			continue
		}
		if m := sourceLabel.FindStringSubmatch(line); m != nil {
			current.source = normalizeSource(m[1])
			continue
		}
		current.append(line)
	}

	record := &entity.CompanyRecord{
		CompanyName: companyName,
		Profile:     sections["profile"].fieldResult(),
		Sector:      sections["sector"].fieldResult(),
		Objectives:  sections["objectives"].fieldResult(),
	}

	if record.Profile.Value == "" && record.Sector.Value == "" && record.Objectives.Value == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrParseFailure, companyName)
	}
	return record, nil
}

func (s *section) append(line string) {
	line = strings.Trim(strings.TrimSpace(line), "*")
	if line != "" {
		s.lines = append(s.lines, line)
	}
}

// fieldResult は蓄積状態をFieldResultに変換します。
// 値が空のセクションは信頼度0・ソース空に揃えます。
func (s *section) fieldResult() entity.FieldResult {
	value := strings.TrimSpace(strings.Join(s.lines, " "))
	if value == "" {
		return entity.FieldResult{}
	}
	return entity.FieldResult{
		Value:      value,
		Confidence: s.confidence,
		Source:     s.source,
	}
}

// normalizeConfidence は信頼度の表記ゆれを0〜100の整数に正規化します。
//
// 許容する表記:
//   - パーセント表記（"85%"）
//   - 整数（"85"）
//   - 小数の割合（"0.85" → 85）
//   - 定性表現（very high → 95, high → 85, medium/moderate → 60, low → 30）
func normalizeConfidence(raw string) int {
	s := strings.ToLower(strings.Trim(strings.TrimSpace(raw), "*` "))
	if s == "" {
		return 0
	}

	switch {
	case strings.Contains(s, "very high"):
		return 95
	case strings.Contains(s, "high"):
		return 85
	case strings.Contains(s, "medium"), strings.Contains(s, "moderate"):
		return 60
	case strings.Contains(s, "low"):
		return 30
	}

	num := confidenceNumber.FindString(s)
	if num == "" {
		return 0
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}

	// パーセント記号のない1.0以下の小数は割合とみなします
	if !strings.Contains(s, "%") && v <= 1.0 && strings.Contains(num, ".") {
		v *= 100
	}

	n := int(math.Round(v))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// normalizeSource はソースURLの表記ゆれを正規化します。
// マークダウンリンクはURL部分のみを取り出し、不明を表す語は空文字にします。
func normalizeSource(raw string) string {
	s := strings.Trim(strings.TrimSpace(raw), "*` ")
	if m := markdownLink.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	s = strings.Trim(s, "<>")
	switch strings.ToLower(s) {
	case "", "n/a", "na", "none", "unknown", "-":
		return ""
	}
	return s
}
