package enrich

import (
	"strings"

	"github.com/yt-prospector/internal/models"
)

// ClassifyLinks partitions links into named social-profile slots plus an
// "other" bucket. Patterns are tested in a fixed order (Instagram, Twitter/X,
// Facebook, LinkedIn) and the first match wins, so a URL containing two
// platform domains lands in the earlier slot. Only the first link per slot is
// kept; later links for a filled slot are dropped, not moved to "other".
func ClassifyLinks(links []string) models.SocialProfileSet {
	set := models.NewSocialProfileSet()
	for _, link := range links {
		switch {
		case strings.Contains(link, "instagram.com"):
			if set.Instagram == models.NotFound {
				set.Instagram = link
			}
		case strings.Contains(link, "twitter.com"), strings.Contains(link, "x.com"):
			if set.Twitter == models.NotFound {
				set.Twitter = link
			}
		case strings.Contains(link, "facebook.com"):
			if set.Facebook == models.NotFound {
				set.Facebook = link
			}
		case strings.Contains(link, "linkedin.com"):
			if set.LinkedIn == models.NotFound {
				set.LinkedIn = link
			}
		default:
			set.Other = append(set.Other, link)
		}
	}
	return set
}
