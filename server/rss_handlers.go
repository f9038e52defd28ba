package server

import (
	"net/http"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsdeck/pkg/domain"
	"github.com/umputun/newsdeck/pkg/interleave"
)

// rssHandler serves RSS feed of the aggregated "all" news.
// Supports both /rss/{category} and /rss?category=... patterns
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if category == "" {
		category = r.URL.Query().Get("category")
	}

	res := s.aggregator.Aggregate(r.Context(), category, domain.SelectAll, 0)
	if res.Err != nil {
		lgr.Printf("[WARN] rss for %q: %v", category, res.Err)
	}

	rss, err := s.rss.GenerateRSS(res.Articles, category)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}
	writeXML(w, "application/rss+xml; charset=utf-8", rss)
}

// aiNewsRSSHandler serves RSS feed of today's AI news with ads
func (s *Server) aiNewsRSSHandler(w http.ResponseWriter, r *http.Request) {
	cached, err := s.aiNews.GetOrRefresh(r.Context(), s.now())
	if err != nil {
		lgr.Printf("[ERROR] failed to get ai news for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	rss, err := s.rss.GenerateAINewsRSS(interleave.Merge(cached.News, s.activeAds(r)), cached.Date)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate AI news RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}
	writeXML(w, "application/rss+xml; charset=utf-8", rss)
}

// opmlHandler serves OPML with one subscription per category feed
func (s *Server) opmlHandler(w http.ResponseWriter, _ *http.Request) {
	opml, err := s.rss.GenerateOPML(domain.Categories())
	if err != nil {
		lgr.Printf("[ERROR] failed to generate OPML: %v", err)
		http.Error(w, "Failed to generate OPML", http.StatusInternalServerError)
		return
	}
	writeXML(w, "text/x-opml; charset=utf-8", opml)
}

func writeXML(w http.ResponseWriter, contentType, body string) {
	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write([]byte(body)); err != nil {
		lgr.Printf("[ERROR] failed to write response: %v", err)
	}
}
