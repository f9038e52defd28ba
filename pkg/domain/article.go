package domain

import (
	"encoding/json"
	"time"
)

// NoDescription is the summary used when a provider supplies neither content nor description
const NoDescription = "No description available"

// Article is the canonical, provider-agnostic news record
type Article struct {
	ID             string    `json:"id"`
	Headline       string    `json:"headline"`
	Summary        string    `json:"summary"`
	URL            string    `json:"url"`
	PublishedAt    time.Time `json:"publishedAt"`
	ImageURL       string    `json:"imageUrl,omitempty"`
	SourceProvider string    `json:"sourceProvider"`
	Category       string    `json:"category"`
}

// Advertisement is a sponsored slot owned by the admin subsystem
type Advertisement struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	LinkURL     string    `json:"linkUrl" db:"link_url"`
	Active      bool      `json:"active" db:"active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// AINewsCache is the materialized AI-generated news for one calendar day (UTC)
type AINewsCache struct {
	Date      string    `json:"date"` // YYYY-MM-DD
	News      []Article `json:"news"`
	CreatedAt time.Time `json:"createdAt"`
}

// DateKey returns the UTC calendar day used as AINewsCache key
func DateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// FeedItemType tags the content of a FeedItem
type FeedItemType string

// feed item types
const (
	FeedItemNews FeedItemType = "news"
	FeedItemAd   FeedItemType = "ad"
)

// FeedItem is one element of the combined feed, either news or ad.
// Exactly one of News and Ad is set, matching Type.
type FeedItem struct {
	Type FeedItemType
	News *Article
	Ad   *Advertisement
}

// NewsItem wraps an article as a feed item
func NewsItem(a Article) FeedItem {
	return FeedItem{Type: FeedItemNews, News: &a}
}

// AdItem wraps an advertisement as a feed item
func AdItem(ad Advertisement) FeedItem {
	return FeedItem{Type: FeedItemAd, Ad: &ad}
}

// MarshalJSON renders the item as {"type": ..., "content": ...}
func (f FeedItem) MarshalJSON() ([]byte, error) {
	var content any
	switch f.Type {
	case FeedItemNews:
		content = f.News
	case FeedItemAd:
		content = f.Ad
	}
	return json.Marshal(struct {
		Type    FeedItemType `json:"type"`
		Content any          `json:"content"`
	}{Type: f.Type, Content: content})
}

// SettingLastWarmup is the settings key holding the time of the last AI news warm-up
const SettingLastWarmup = "ai_news_last_warmup"

// SettingPlaceholderRefreshes is the settings key counting placeholder regenerations, stored as "YYYY-MM-DD:N"
const SettingPlaceholderRefreshes = "ai_news_placeholder_refreshes"
