package domain

// ProviderID identifies a news provider adapter
type ProviderID string

// news providers, in fan-out iteration order
const (
	ProviderNewsAPI    ProviderID = "newsapi"
	ProviderGNews      ProviderID = "gnews"
	ProviderNewsData   ProviderID = "newsdata"
	ProviderGuardian   ProviderID = "guardian"
	ProviderNYTimes    ProviderID = "nytimes"
	ProviderCurrents   ProviderID = "currents"
	ProviderMediastack ProviderID = "mediastack"
	ProviderTheNewsAPI ProviderID = "thenewsapi"
	ProviderGoogleNews ProviderID = "googlenews"
)

// SelectAll is the provider selector meaning "every known provider"
const SelectAll = "all"

// AllProviders returns every news provider id in iteration order
func AllProviders() []ProviderID {
	return []ProviderID{
		ProviderNewsAPI, ProviderGNews, ProviderNewsData, ProviderGuardian, ProviderNYTimes,
		ProviderCurrents, ProviderMediastack, ProviderTheNewsAPI, ProviderGoogleNews,
	}
}

// ProviderResult is the outcome of invoking one adapter.
// Articles is always non-nil; Error is set only on failure.
type ProviderResult struct {
	ProviderName string     `json:"providerName"`
	Articles     []Article  `json:"articles"`
	Error        *ErrorInfo `json:"error"`

	Err error `json:"-"` // original typed error, kept for in-process propagation
}

// OK reports whether the provider call succeeded
func (r ProviderResult) OK() bool {
	return r.Err == nil
}

// NewProviderResult builds a successful result
func NewProviderResult(provider string, articles []Article) ProviderResult {
	if articles == nil {
		articles = []Article{}
	}
	return ProviderResult{ProviderName: provider, Articles: articles}
}

// FailedProviderResult builds a failed result with the error projected into ErrorInfo
func FailedProviderResult(provider string, err error) ProviderResult {
	return ProviderResult{ProviderName: provider, Articles: []Article{}, Error: NewErrorInfo(err), Err: err}
}
