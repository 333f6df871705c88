package models

import (
	"fmt"
	"io"
	"text/template"
	"time"
)

// SkipReason classifies why a channel was left out of the sheet.
type SkipReason string

const (
	SkipChannelNotFound SkipReason = "channel_not_found"
	SkipMissingTitle    SkipReason = "missing_title"
	SkipStoreNotFound   SkipReason = "store_not_found"
	SkipWriteFailed     SkipReason = "write_failed"
)

// SkippedChannel records one channel that was dropped from a batch.
type SkippedChannel struct {
	ChannelID string     `json:"channel_id"`
	Title     string     `json:"title,omitempty"`
	Reason    SkipReason `json:"reason"`
}

// BatchReport summarises one enrichment run: how many channels the search
// returned, how many rows were written and which channels were skipped.
type BatchReport struct {
	Keyword    string           `json:"keyword"`
	MaxResults int64            `json:"max_results"`
	Found      int              `json:"found"`
	Processed  int              `json:"processed"`
	Skipped    []SkippedChannel `json:"skipped,omitempty"`
	StartTime  time.Time        `json:"start_time"`
	EndTime    time.Time        `json:"end_time"`
}

// NewBatchReport starts a report for a run of the given keyword.
func NewBatchReport(keyword string, maxResults int64) *BatchReport {
	return &BatchReport{
		Keyword:    keyword,
		MaxResults: maxResults,
		StartTime:  time.Now().UTC(),
	}
}

// Skip adds one skipped channel to the report.
func (r *BatchReport) Skip(id, title string, reason SkipReason) {
	r.Skipped = append(r.Skipped, SkippedChannel{ChannelID: id, Title: title, Reason: reason})
}

// Finish stamps the end time of the run.
func (r *BatchReport) Finish() {
	r.EndTime = time.Now().UTC()
}

// Duration is the wall time of the run.
func (r *BatchReport) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

const reportTmpl = `Enrichment Run Summary
----------------------
Keyword:    {{.Keyword}} (max {{.MaxResults}})
Duration:   {{.Duration}}
Found:      {{.Found}} channels
Processed:  {{.Processed}} rows written
Skipped:    {{len .Skipped}}
{{- range .Skipped}}
  {{.ChannelID}}{{if .Title}} ({{.Title}}){{end}}: {{.Reason}}
{{- end}}
`

// WriteText writes a human-readable summary of the run to w.
func (r *BatchReport) WriteText(w io.Writer) error {
	t, err := template.New("report").Parse(reportTmpl)
	if err != nil {
		return fmt.Errorf("parsing report template: %w", err)
	}
	if err := t.Execute(w, r); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}
