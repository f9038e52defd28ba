package feed

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/umputun/newsdeck/pkg/domain"
)

// Generator creates RSS feeds from aggregated articles
type Generator struct {
	baseURL string
	now     func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// GenerateRSS creates an RSS 2.0 feed from articles of the given category, empty category means all news
func (g *Generator) GenerateRSS(articles []domain.Article, category string) (string, error) {
	title := "Newsdeck - All News"
	selfLink := g.baseURL + "/rss"
	if category != "" {
		title = "Newsdeck - " + category
		selfLink = g.CategoryURL(category)
	}

	rssItems := make([]*RSSItem, 0, len(articles))
	for _, a := range articles {
		rssItems = append(rssItems, g.convertToRSSItem(a))
	}

	return g.render(title, selfLink, "Headlines merged from multiple news providers", rssItems)
}

// GenerateAINewsRSS creates an RSS 2.0 feed from the AI news of one day, ads included as sponsored items
func (g *Generator) GenerateAINewsRSS(items []domain.FeedItem, date string) (string, error) {
	rssItems := make([]*RSSItem, 0, len(items))
	for _, it := range items {
		switch {
		case it.Type == domain.FeedItemNews && it.News != nil:
			rssItems = append(rssItems, g.convertToRSSItem(*it.News))
		case it.Type == domain.FeedItemAd && it.Ad != nil:
			rssItems = append(rssItems, g.convertAdToRSSItem(*it.Ad))
		}
	}
	return g.render("Newsdeck - AI News "+date, g.baseURL+"/rss/ai-news", "AI-generated news briefing", rssItems)
}

// CategoryURL returns the public RSS url of the category
func (g *Generator) CategoryURL(category string) string {
	return fmt.Sprintf("%s/rss/%s", g.baseURL, url.PathEscape(category))
}

func (g *Generator) render(title, selfLink, description string, items []*RSSItem) (string, error) {
	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   description,
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().Format(time.RFC1123Z),
			Items:         items,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

// convertToRSSItem converts an article to an RSS item
func (g *Generator) convertToRSSItem(a domain.Article) *RSSItem {
	item := &RSSItem{
		Title:       a.Headline,
		Link:        a.URL,
		GUID:        &GUID{Value: a.ID, IsPermaLink: "false"},
		Description: a.Summary,
		Source:      a.SourceProvider,
	}
	if !a.PublishedAt.IsZero() {
		item.PubDate = a.PublishedAt.Format(time.RFC1123Z)
	}
	if a.Category != "" {
		item.Categories = []string{a.Category}
	}
	if a.ImageURL != "" {
		item.Enclosure = &Enclosure{URL: a.ImageURL, Type: imageType(a.ImageURL)}
	}
	return item
}

func (g *Generator) convertAdToRSSItem(ad domain.Advertisement) *RSSItem {
	item := &RSSItem{
		Title:       "[Sponsored] " + ad.Title,
		Link:        ad.LinkURL,
		GUID:        &GUID{Value: fmt.Sprintf("ad-%d", ad.ID), IsPermaLink: "false"},
		Description: ad.Description,
		Categories:  []string{"Sponsored"},
	}
	if ad.ImageURL != "" {
		item.Enclosure = &Enclosure{URL: ad.ImageURL, Type: imageType(ad.ImageURL)}
	}
	return item
}

// GenerateOPML creates an OPML file with one subscription per category feed
func (g *Generator) GenerateOPML(categories []string) (string, error) {
	type outline struct {
		XMLName xml.Name `xml:"outline"`
		Text    string   `xml:"text,attr"`
		Title   string   `xml:"title,attr"`
		Type    string   `xml:"type,attr"`
		XMLUrl  string   `xml:"xmlUrl,attr"`
		HTMLUrl string   `xml:"htmlUrl,attr,omitempty"`
	}

	type body struct {
		XMLName  xml.Name  `xml:"body"`
		Outlines []outline `xml:"outline"`
	}

	type head struct {
		XMLName     xml.Name `xml:"head"`
		Title       string   `xml:"title"`
		DateCreated string   `xml:"dateCreated"`
	}

	type opml struct {
		XMLName xml.Name `xml:"opml"`
		Version string   `xml:"version,attr"`
		Head    head     `xml:"head"`
		Body    body     `xml:"body"`
	}

	outlines := make([]outline, 0, len(categories))
	for _, c := range categories {
		outlines = append(outlines, outline{
			Text:    "Newsdeck - " + c,
			Title:   "Newsdeck - " + c,
			Type:    "rss",
			XMLUrl:  g.CategoryURL(c),
			HTMLUrl: g.baseURL + "/",
		})
	}

	doc := opml{
		Version: "2.0",
		Head:    head{Title: "Newsdeck Category Feeds", DateCreated: g.now().Format(time.RFC1123Z)},
		Body:    body{Outlines: outlines},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal OPML: %w", err)
	}
	return xml.Header + string(output), nil
}

// imageType guesses enclosure mime type from the url extension
func imageType(link string) string {
	path := link
	if u, err := url.Parse(link); err == nil {
		path = u.Path
	}
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".png"):
		return "image/png"
	case strings.HasSuffix(strings.ToLower(path), ".gif"):
		return "image/gif"
	case strings.HasSuffix(strings.ToLower(path), ".webp"):
		return "image/webp"
	}
	return "image/jpeg"
}
