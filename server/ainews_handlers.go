package server

import (
	"net/http"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsdeck/pkg/interleave"
)

// aiNewsHandler returns today's AI news, generating them on the first request of the day
func (s *Server) aiNewsHandler(w http.ResponseWriter, r *http.Request) {
	cached, err := s.aiNews.GetOrRefresh(r.Context(), s.now())
	if err != nil {
		lgr.Printf("[ERROR] failed to get ai news: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, cached)
}

// aiNewsFeedHandler returns today's AI news interleaved with active ads
func (s *Server) aiNewsFeedHandler(w http.ResponseWriter, r *http.Request) {
	cached, err := s.aiNews.GetOrRefresh(r.Context(), s.now())
	if err != nil {
		lgr.Printf("[ERROR] failed to get ai news: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	env := newsEnvelope{Status: statusOK, Results: interleave.Merge(cached.News, s.activeAds(r))}
	renderJSON(w, r, http.StatusOK, newsResponse{Response: env})
}
