package usecase

import (
	"errors"
	"reflect"
	"testing"

	"research_backend/internal/feature/research/domain"
	"research_backend/internal/feature/research/domain/entity"
)

// wellFormedResponse は3セクションすべてを含む整形済みのLLM応答サンプルです。
const wellFormedResponse = `Company Profile: Acme Corp is a global manufacturer of anvils and rocket-powered devices.
Confidence: 85%
Source: https://example.com/acme-about

Industry Sector: Industrial manufacturing
Confidence: 0.9
Source: https://example.com/acme-sector

Strategic Objectives: Expand into renewable anvil production by 2025.
Confidence: high
Source: https://example.com/acme-plans
`

func TestParseRecord_WellFormed(t *testing.T) {
	t.Parallel()

	record, err := ParseRecord("Acme Corp", wellFormedResponse)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.CompanyName != "Acme Corp" {
		t.Errorf("company name mismatch: got %q", record.CompanyName)
	}

	want := entity.FieldResult{
		Value:      "Acme Corp is a global manufacturer of anvils and rocket-powered devices.",
		Confidence: 85,
		Source:     "https://example.com/acme-about",
	}
	if record.Profile != want {
		t.Errorf("profile mismatch: got %+v, want %+v", record.Profile, want)
	}
	if record.Sector.Confidence != 90 {
		t.Errorf("sector confidence: got %d, want 90", record.Sector.Confidence)
	}
	if record.Objectives.Confidence != 85 {
		t.Errorf("objectives confidence: got %d, want 85", record.Objectives.Confidence)
	}
	if record.Objectives.Source != "https://example.com/acme-plans" {
		t.Errorf("objectives source: got %q", record.Objectives.Source)
	}
}

func TestParseRecord_MarkdownDecoration(t *testing.T) {
	t.Parallel()

	raw := `### **Company Profile:** Acme Corp makes anvils.
**Confidence:** **90%**
**Source:** [About Acme](https://example.com/about)

## Industry Sector
Heavy industry
Confidence: Medium
Source: <https://example.com/sector>
`
	record, err := ParseRecord("Acme Corp", raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.Profile.Value != "Acme Corp makes anvils." {
		t.Errorf("profile value: got %q", record.Profile.Value)
	}
	if record.Profile.Confidence != 90 {
		t.Errorf("profile confidence: got %d, want 90", record.Profile.Confidence)
	}
	if record.Profile.Source != "https://example.com/about" {
		t.Errorf("profile source: got %q", record.Profile.Source)
	}
	if record.Sector.Value != "Heavy industry" {
		t.Errorf("sector value: got %q", record.Sector.Value)
	}
	if record.Sector.Confidence != 60 {
		t.Errorf("sector confidence: got %d, want 60", record.Sector.Confidence)
	}
	if record.Sector.Source != "https://example.com/sector" {
		t.Errorf("sector source: got %q", record.Sector.Source)
	}
}

func TestParseRecord_MissingSection(t *testing.T) {
	t.Parallel()

	// Industry Sectorセクションを丸ごと省略した応答
	raw := `Company Profile: Acme Corp is an anvil company.
Confidence: 80
Source: https://example.com/a

Strategic Objectives: Grow anvil sales.
Confidence: 70
Source: https://example.com/b
`
	record, err := ParseRecord("Acme Corp", raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 欠落したセクションは空値・信頼度0・ソース空になる
	if record.Sector != (entity.FieldResult{}) {
		t.Errorf("sector should be zero-valued, got %+v", record.Sector)
	}
	if record.Profile.Value == "" || record.Objectives.Value == "" {
		t.Errorf("profile and objectives should be populated: %+v", record)
	}
}

func TestParseRecord_AllSectionsMissing(t *testing.T) {
	t.Parallel()

	_, err := ParseRecord("Acme Corp", "I could not find any information about this company.")
	if !errors.Is(err, domain.ErrParseFailure) {
		t.Fatalf("expected ErrParseFailure, got %v", err)
	}
}

func TestParseRecord_Idempotent(t *testing.T) {
	t.Parallel()

	first, err := ParseRecord("Acme Corp", wellFormedResponse)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ParseRecord("Acme Corp", wellFormedResponse)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("parsing is not idempotent: %+v vs %+v", first, second)
	}
}

func TestNormalizeConfidence(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		raw      string
		expected int
	}{
		{"percentage", "85%", 85},
		{"bare integer", "85", 85},
		{"decimal fraction", "0.85", 85},
		{"fraction of one", "1.0", 100},
		{"qualitative very high", "Very High", 95},
		{"qualitative high", "high", 85},
		{"qualitative medium", "Medium", 60},
		{"qualitative moderate", "moderate", 60},
		{"qualitative low", "Low", 30},
		{"markdown decorated", "**90%**", 90},
		{"over scale clamped", "120", 100},
		{"empty", "", 0},
		{"non-numeric", "maybe?", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := normalizeConfidence(tc.raw); got != tc.expected {
				t.Errorf("normalizeConfidence(%q) = %d, want %d", tc.raw, got, tc.expected)
			}
		})
	}
}

func TestNormalizeSource(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{"plain url", "https://example.com/a", "https://example.com/a"},
		{"markdown link", "[About](https://example.com/a)", "https://example.com/a"},
		{"angle brackets", "<https://example.com/a>", "https://example.com/a"},
		{"not available", "N/A", ""},
		{"unknown", "unknown", ""},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := normalizeSource(tc.raw); got != tc.expected {
				t.Errorf("normalizeSource(%q) = %q, want %q", tc.raw, got, tc.expected)
			}
		})
	}
}
