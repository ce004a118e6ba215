package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/noemalabs/noema/internal/catalog"
	"github.com/noemalabs/noema/internal/domain"
)

// Export formats
const (
	FormatStructured = "structured"
	FormatNarrative  = "narrative"
	FormatSummary    = "summary"
)

// ExportedThought is one thought in a structured export.
type ExportedThought struct {
	ID          string                  `json:"id"`
	Content     string                  `json:"content"`
	Type        domain.ThoughtType      `json:"type"`
	Strategy    domain.ThinkingStrategy `json:"strategy"`
	Timestamp   time.Time               `json:"timestamp"`
	Metrics     domain.ThoughtMetrics   `json:"metrics"`
	Biases      []string                `json:"biases"`
	Connections ExportedConnections     `json:"connections"`
	Tags        []string                `json:"tags"`
}

// ExportedConnections flattens a thought's graph relations for export.
type ExportedConnections struct {
	Parent      string   `json:"parent,omitempty"`
	Children    []string `json:"children"`
	Supports    []string `json:"supports"`
	Contradicts []string `json:"contradicts"`
}

// StructuredExport is the full-fidelity session dump.
type StructuredExport struct {
	SessionID       string            `json:"session_id"`
	ExportTimestamp time.Time         `json:"export_timestamp"`
	ThoughtCount    int               `json:"thought_count"`
	Thoughts        []ExportedThought `json:"thoughts"`
}

// NarrativeExport wraps the rendered markdown document.
type NarrativeExport struct {
	Content string `json:"content"`
	Format  string `json:"format"`
}

// SummaryExport condenses a session into headline numbers and sentences.
type SummaryExport struct {
	SessionSummary SessionSummary `json:"session_summary"`
	KeyInsights    []string       `json:"key_insights"`
}

type SessionSummary struct {
	SessionID               string  `json:"session_id"`
	TotalThoughts           int     `json:"total_thoughts"`
	CoherenceScore          float64 `json:"coherence_score"`
	QualityTrend            float64 `json:"quality_trend"`
	AverageQuality          float64 `json:"average_quality"`
	CognitiveBiasesDetected int     `json:"cognitive_biases_detected"`
}

// ValidExportFormat reports whether the format name is one the exporter
// understands.
func ValidExportFormat(format string) bool {
	switch format {
	case FormatStructured, FormatNarrative, FormatSummary:
		return true
	}
	return false
}

// Export renders a session in the requested format. Unknown sessions and
// unknown formats are errors; a known empty session exports cleanly with a
// zero thought count.
func (s *SessionService) Export(sessionID, format string, cat *catalog.Catalog) (any, error) {
	if !ValidExportFormat(format) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}
	sessionID = sessionOrDefault(sessionID)
	thoughts, ok := s.store.SessionThoughts(sessionID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	switch format {
	case FormatNarrative:
		return s.exportNarrative(sessionID, thoughts, cat), nil
	case FormatSummary:
		return s.exportSummary(sessionID, thoughts, cat)
	default:
		return s.exportStructured(sessionID, thoughts), nil
	}
}

func (s *SessionService) exportStructured(sessionID string, thoughts []*domain.Thought) StructuredExport {
	export := StructuredExport{
		SessionID:       sessionID,
		ExportTimestamp: time.Now(),
		ThoughtCount:    len(thoughts),
		Thoughts:        make([]ExportedThought, 0, len(thoughts)),
	}
	for _, t := range thoughts {
		export.Thoughts = append(export.Thoughts, ExportedThought{
			ID:        t.ID,
			Content:   t.Content,
			Type:      t.Type,
			Strategy:  t.Strategy,
			Timestamp: t.Timestamp,
			Metrics:   t.Metrics,
			Biases:    emptyIfNil(t.CognitiveBiases),
			Connections: ExportedConnections{
				Parent:      t.ParentID,
				Children:    emptyIfNil(t.ChildrenIDs),
				Supports:    emptyIfNil(t.Supports),
				Contradicts: emptyIfNil(t.Contradicts),
			},
			Tags: emptyIfNil(t.Tags),
		})
	}
	return export
}

func (s *SessionService) exportNarrative(sessionID string, thoughts []*domain.Thought, cat *catalog.Catalog) NarrativeExport {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", cat.T("export_title"))
	fmt.Fprintf(&b, "**%s:** %s\n", cat.T("label_session_id"), sessionID)
	fmt.Fprintf(&b, "**%s:** %s\n", cat.T("label_export_date"), time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**%s:** %d\n\n", cat.T("label_total_thoughts"), len(thoughts))
	fmt.Fprintf(&b, "## %s\n\n", cat.T("heading_thoughts"))

	for i, t := range thoughts {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, titleCase(string(t.Type)))
		fmt.Fprintf(&b, "**ID:** %s\n", t.ID)
		fmt.Fprintf(&b, "**%s:** %s\n", cat.T("label_strategy"), t.Strategy)
		fmt.Fprintf(&b, "**%s:** %s %.2f | %s %.2f | %s %.2f\n\n",
			cat.T("label_quality"),
			cat.T("label_clarity"), t.Metrics.ClarityScore,
			cat.T("label_logic"), t.Metrics.LogicalCoherence,
			cat.T("label_evidence"), t.Metrics.EvidenceStrength)
		b.WriteString(t.Content)
		b.WriteString("\n\n")
		if len(t.CognitiveBiases) > 0 {
			fmt.Fprintf(&b, "**%s**: %s\n\n", cat.T("label_detected_biases"), strings.Join(t.CognitiveBiases, ", "))
		}
	}
	return NarrativeExport{Content: b.String(), Format: FormatNarrative}
}

func (s *SessionService) exportSummary(sessionID string, thoughts []*domain.Thought, cat *catalog.Catalog) (SummaryExport, error) {
	analysis, err := s.AnalyzeCoherence(sessionID, cat)
	if err != nil {
		return SummaryExport{}, err
	}

	trendText := cat.T("trend_stable")
	if analysis.QualityTrend > 0 {
		trendText = cat.T("trend_improving")
	} else if analysis.QualityTrend < 0 {
		trendText = cat.T("trend_declining")
	}

	return SummaryExport{
		SessionSummary: SessionSummary{
			SessionID:               sessionID,
			TotalThoughts:           len(thoughts),
			CoherenceScore:          analysis.CoherenceScore,
			QualityTrend:            analysis.QualityTrend,
			AverageQuality:          analysis.AverageQuality,
			CognitiveBiasesDetected: analysis.CognitiveBiasesDetected,
		},
		KeyInsights: []string{
			fmt.Sprintf(cat.T("summary_processed_thoughts"), len(thoughts), analysis.CoherenceScore),
			fmt.Sprintf(cat.T("summary_quality_trend"), trendText),
			fmt.Sprintf(cat.T("summary_detected_biases"), analysis.CognitiveBiasesDetected),
		},
	}, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
