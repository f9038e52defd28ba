// Package interleave merges articles with sponsored items at a fixed cadence.
package interleave

import (
	"github.com/umputun/newsdeck/pkg/domain"
)

// Every is the number of articles between two sponsored items
const Every = 3

// Merge walks articles in order and appends one ad after every Every-th article.
// Ads are cycled round-robin. Without ads the articles pass through unchanged.
func Merge(articles []domain.Article, ads []domain.Advertisement) []domain.FeedItem {
	res := make([]domain.FeedItem, 0, len(articles)+adsFor(len(articles), len(ads)))
	for i, a := range articles {
		res = append(res, domain.NewsItem(a))
		if ad, ok := AdAfter(i+1, ads); ok {
			res = append(res, domain.AdItem(ad))
		}
	}
	return res
}

// AdAfter returns the ad to place after emitted-th article, false if no ad goes there
func AdAfter(emitted int, ads []domain.Advertisement) (domain.Advertisement, bool) {
	if len(ads) == 0 || emitted <= 0 || emitted%Every != 0 {
		return domain.Advertisement{}, false
	}
	return ads[(emitted/Every-1)%len(ads)], true
}

func adsFor(articles, ads int) int {
	if ads == 0 {
		return 0
	}
	return articles / Every
}
