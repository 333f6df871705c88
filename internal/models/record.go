package models

import "strings"

// SheetSchema is the header row of the target sheet. Its order is the schema
// contract with EnrichmentRecord.Row and must not change once a sheet has data.
var SheetSchema = []string{
	"Channel Name",
	"Channel URL",
	"Subscribers",
	"Total Views",
	"Video Count",
	"Join Date",
	"Country",
	"Channel Description",
	"Instagram",
	"Twitter",
	"Facebook",
	"LinkedIn",
	"Other Links",
	"Email",
}

// SocialProfileSet holds one link per known social platform, plus every
// unclassified link in Other. Unfilled slots carry the NotFound sentinel.
type SocialProfileSet struct {
	Instagram string   `json:"instagram"`
	Twitter   string   `json:"twitter"`
	Facebook  string   `json:"facebook"`
	LinkedIn  string   `json:"linkedin"`
	Other     []string `json:"other,omitempty"`
}

// NewSocialProfileSet returns a set with all four slots unfilled.
func NewSocialProfileSet() SocialProfileSet {
	return SocialProfileSet{
		Instagram: NotFound,
		Twitter:   NotFound,
		Facebook:  NotFound,
		LinkedIn:  NotFound,
	}
}

// OtherJoined renders the unclassified links as a comma-joined cell value.
func (s SocialProfileSet) OtherJoined() string {
	if len(s.Other) == 0 {
		return NotFound
	}
	return strings.Join(s.Other, ", ")
}

// EnrichmentRecord is the flattened result of enriching one channel. It is
// created once per processed channel and appended to the sheet as a single row.
type EnrichmentRecord struct {
	Title       string           `json:"title"`
	ChannelURL  string           `json:"channelUrl"`
	Subscribers *uint64          `json:"subscriberCount,omitempty"`
	ViewCount   *uint64          `json:"viewCount,omitempty"`
	VideoCount  *uint64          `json:"videoCount,omitempty"`
	JoinDate    string           `json:"joinDate"`
	Country     string           `json:"country"`
	Description string           `json:"description"`
	Social      SocialProfileSet `json:"social"`
	Email       string           `json:"email"`
}

// Row flattens the record into cell values ordered to match SheetSchema.
func (r EnrichmentRecord) Row() []any {
	return []any{
		r.Title,
		r.ChannelURL,
		countOrNA(r.Subscribers),
		countOrNA(r.ViewCount),
		countOrNA(r.VideoCount),
		r.JoinDate,
		r.Country,
		r.Description,
		r.Social.Instagram,
		r.Social.Twitter,
		r.Social.Facebook,
		r.Social.LinkedIn,
		r.Social.OtherJoined(),
		r.Email,
	}
}

func countOrNA(v *uint64) any {
	if v == nil {
		return NotAvailable
	}
	return *v
}
