package api

import (
	"context"
	"fmt"

	"github.com/yt-prospector/internal/models"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTubeClient wraps the YouTube Data API for channel search and lookup.
type YouTubeClient struct {
	service *youtube.Service
}

// NewYouTubeClient creates a new YouTube client. Extra options are passed
// through to the service, e.g. option.WithEndpoint in tests.
func NewYouTubeClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*YouTubeClient, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &YouTubeClient{service: service}, nil
}

// SearchChannels resolves a keyword to at most limit channel summaries.
func (c *YouTubeClient) SearchChannels(ctx context.Context, keyword string, limit int64) ([]models.ChannelSummary, error) {
	call := c.service.Search.List([]string{"snippet"}).
		Q(keyword).
		Type("channel").
		MaxResults(limit).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("error searching channels for %q: %w", keyword, err)
	}

	summaries := make([]models.ChannelSummary, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id == nil || item.Id.ChannelId == "" {
			continue
		}
		summary := models.ChannelSummary{ID: item.Id.ChannelId}
		if item.Snippet != nil {
			summary.Title = item.Snippet.Title
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// FetchChannel fetches the snippet and statistics of one channel. It returns
// models.ErrChannelNotFound when the ID resolves to zero items.
func (c *YouTubeClient) FetchChannel(ctx context.Context, channelID string) (*models.ChannelDetail, error) {
	call := c.service.Channels.List([]string{"snippet", "statistics"}).
		Id(channelID).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("error fetching channel %s: %w", channelID, err)
	}
	if len(response.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrChannelNotFound, channelID)
	}

	item := response.Items[0]
	detail := &models.ChannelDetail{ID: channelID}
	if item.Snippet != nil {
		detail.Title = item.Snippet.Title
		detail.CustomURL = item.Snippet.CustomUrl
		detail.PublishedAt = item.Snippet.PublishedAt
		detail.Country = item.Snippet.Country
		detail.Description = item.Snippet.Description
	}
	if item.Statistics != nil {
		if !item.Statistics.HiddenSubscriberCount {
			subscribers := item.Statistics.SubscriberCount
			detail.Subscribers = &subscribers
		}
		views := item.Statistics.ViewCount
		detail.ViewCount = &views
		videos := item.Statistics.VideoCount
		detail.VideoCount = &videos
	}
	return detail, nil
}
