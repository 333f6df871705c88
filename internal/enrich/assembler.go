package enrich

import (
	"context"
	"log"

	"github.com/yt-prospector/internal/models"
	"golang.org/x/sync/errgroup"
)

const channelBaseURL = "https://www.youtube.com"

// WebSearcher issues one free-text web search.
type WebSearcher interface {
	Query(ctx context.Context, text string) ([]models.SearchResult, error)
}

// Assembler composes channel metadata and web-search results into one flat
// enrichment record per channel.
type Assembler struct {
	search WebSearcher
}

// NewAssembler creates an assembler backed by the given web searcher.
func NewAssembler(search WebSearcher) *Assembler {
	return &Assembler{search: search}
}

// Assemble builds the enrichment record for one channel. The social-link and
// contact-email searches are independent and run concurrently; either failing
// degrades that part of the record to its sentinel rather than aborting.
func (a *Assembler) Assemble(ctx context.Context, detail models.ChannelDetail) models.EnrichmentRecord {
	var social, contact []models.SearchResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		results, err := a.search.Query(gctx, detail.Title+" Instagram OR Twitter OR Facebook OR LinkedIn OR Website")
		if err != nil {
			log.Printf("social link search failed for %q: %v", detail.Title, err)
			return nil
		}
		social = results
		return nil
	})
	g.Go(func() error {
		results, err := a.search.Query(gctx, detail.Title+" contact email")
		if err != nil {
			log.Printf("contact email search failed for %q: %v", detail.Title, err)
			return nil
		}
		contact = results
		return nil
	})
	_ = g.Wait()

	links := make([]string, 0, len(social))
	for _, r := range social {
		if r.Link != "" {
			links = append(links, r.Link)
		}
	}

	return models.EnrichmentRecord{
		Title:       detail.Title,
		ChannelURL:  channelURL(detail),
		Subscribers: detail.Subscribers,
		ViewCount:   detail.ViewCount,
		VideoCount:  detail.VideoCount,
		JoinDate:    orNA(detail.PublishedAt),
		Country:     CountryName(detail.Country),
		Description: orNA(detail.Description),
		Social:      ClassifyLinks(links),
		Email:       ExtractEmail(contact),
	}
}

// channelURL builds the canonical channel URL, preferring the custom handle.
func channelURL(detail models.ChannelDetail) string {
	if detail.CustomURL != "" {
		return channelBaseURL + "/" + detail.CustomURL
	}
	return channelBaseURL + "/channel/" + detail.ID
}

func orNA(s string) string {
	if s == "" {
		return models.NotAvailable
	}
	return s
}
