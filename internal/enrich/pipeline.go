package enrich

import (
	"context"
	"errors"
	"log"

	"github.com/yt-prospector/internal/models"
	"github.com/yt-prospector/internal/sheetstore"
)

// ChannelSearcher resolves a keyword to a bounded list of channel summaries.
type ChannelSearcher interface {
	SearchChannels(ctx context.Context, keyword string, limit int64) ([]models.ChannelSummary, error)
}

// ChannelFetcher resolves a channel ID to its metadata. Implementations return
// an error wrapping models.ErrChannelNotFound when the ID resolves to nothing.
type ChannelFetcher interface {
	FetchChannel(ctx context.Context, channelID string) (*models.ChannelDetail, error)
}

// SheetWriter persists enrichment records into the tabular store.
type SheetWriter interface {
	EnsureSchema(ctx context.Context) error
	Append(ctx context.Context, record models.EnrichmentRecord) error
}

// Pipeline drives one enrichment batch: keyword search, per-channel detail
// fetch, record assembly and sheet append. Channels are processed one at a
// time in search order; a failure on one channel never halts its siblings.
type Pipeline struct {
	search    ChannelSearcher
	fetch     ChannelFetcher
	assembler *Assembler
	writer    SheetWriter
}

// NewPipeline wires the pipeline from injected collaborators.
func NewPipeline(search ChannelSearcher, fetch ChannelFetcher, assembler *Assembler, writer SheetWriter) *Pipeline {
	return &Pipeline{
		search:    search,
		fetch:     fetch,
		assembler: assembler,
		writer:    writer,
	}
}

// Run executes one batch and always returns a finished report, even when every
// channel was skipped. Upstream failures degrade to empty results per channel.
func (p *Pipeline) Run(ctx context.Context, keyword string, limit int64) *models.BatchReport {
	report := models.NewBatchReport(keyword, limit)
	defer report.Finish()

	summaries, err := p.search.SearchChannels(ctx, keyword, limit)
	if err != nil {
		log.Printf("channel search failed for %q: %v", keyword, err)
		summaries = nil
	}
	report.Found = len(summaries)
	log.Printf("Found %d channels for %q", len(summaries), keyword)

	for _, summary := range summaries {
		detail, err := p.fetch.FetchChannel(ctx, summary.ID)
		if err != nil {
			if errors.Is(err, models.ErrChannelNotFound) {
				log.Printf("skipping %s: channel no longer exists", summary.ID)
			} else {
				log.Printf("skipping %s: %v", summary.ID, err)
			}
			report.Skip(summary.ID, summary.Title, models.SkipChannelNotFound)
			continue
		}

		// A channel without a title cannot be keyed in the sheet.
		if detail.Title == "" {
			log.Printf("skipping %s: upstream payload has no title", summary.ID)
			report.Skip(summary.ID, summary.Title, models.SkipMissingTitle)
			continue
		}

		record := p.assembler.Assemble(ctx, *detail)

		if err := p.writer.EnsureSchema(ctx); err != nil {
			reason := models.SkipWriteFailed
			if errors.Is(err, sheetstore.ErrStoreNotFound) {
				reason = models.SkipStoreNotFound
			}
			log.Printf("skipping %s: %v", summary.ID, err)
			report.Skip(summary.ID, detail.Title, reason)
			continue
		}
		if err := p.writer.Append(ctx, record); err != nil {
			reason := models.SkipWriteFailed
			if errors.Is(err, sheetstore.ErrStoreNotFound) {
				reason = models.SkipStoreNotFound
			}
			log.Printf("failed to write row for %s: %v", summary.ID, err)
			report.Skip(summary.ID, detail.Title, reason)
			continue
		}

		report.Processed++
		log.Printf("Processed: %s", detail.Title)
	}

	return report
}
