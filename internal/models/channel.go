package models

import "errors"

// Sentinel strings written to the sheet in place of absent data. NotAvailable
// marks a missing channel field, NotFound a missing social link or email. The
// two are never interchanged.
const (
	NotAvailable = "N/A"
	NotFound     = "Not found"
)

// ErrChannelNotFound is returned when a channel lookup resolves to zero items,
// e.g. for a stale or deleted channel ID.
var ErrChannelNotFound = errors.New("channel not found")

// ChannelSummary is a single hit from a keyword channel search.
type ChannelSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ChannelDetail holds the metadata of one YouTube channel. Counter fields are
// nil when the channel hides or omits its statistics.
type ChannelDetail struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	CustomURL   string  `json:"customUrl,omitempty"`
	PublishedAt string  `json:"publishedAt,omitempty"`
	Country     string  `json:"country,omitempty"`
	Description string  `json:"description,omitempty"`
	Subscribers *uint64 `json:"subscriberCount,omitempty"`
	ViewCount   *uint64 `json:"viewCount,omitempty"`
	VideoCount  *uint64 `json:"videoCount,omitempty"`
}

// SearchResult is one organic result from a web search.
type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}
