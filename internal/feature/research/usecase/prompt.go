package usecase

import (
	"fmt"
	"strings"

	"research_backend/internal/feature/research/domain/entity"
)

const (
	// MaxSnippetLength はプロンプトに埋め込むスニペットの最大文字数です。
	MaxSnippetLength = 500
)

// promptInstruction はLLMに要求する応答フォーマットです。
// パーサーが固定の形に依存できるよう、3セクションとラベルを明示的に指定します。
const promptInstruction = `Respond with exactly three sections in the following format. Keep the section labels exactly as written:

Company Profile: <one short paragraph describing what the company is and does>
Confidence: <integer 0-100>
Source: <URL of the search result the profile is based on>

Industry Sector: <the industry sector the company operates in>
Confidence: <integer 0-100>
Source: <URL>

Strategic Objectives: <the company's stated goals and future plans>
Confidence: <integer 0-100>
Source: <URL>

Base every section only on the search results above and cite the most relevant URL as its source. If the results do not support a section, leave its text empty and use Confidence: 0.`

// BuildPrompt は企業名と検索結果からLLM向けのプロンプトを組み立てます。
// 副作用のない純粋関数で、同じ入力に対して常に同じ文字列を返します。
func BuildPrompt(companyName string, results []entity.SearchResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a company research assistant. Using only the web search results below, research the company %q.\n\n", companyName)
	b.WriteString("Web search results:\n")

	if len(results) == 0 {
		b.WriteString("(no results)\n")
	}
	for i, r := range results {
		snippet := r.Snippet
		if len(snippet) > MaxSnippetLength {
			snippet = snippet[:MaxSnippetLength]
		}
		fmt.Fprintf(&b, "%d. %s\n   %s\n   URL: %s\n", i+1, r.Title, snippet, r.URL)
	}

	b.WriteString("\n")
	b.WriteString(promptInstruction)
	b.WriteString("\n")

	return b.String()
}
