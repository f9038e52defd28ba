package ainews

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/umputun/newsdeck/pkg/domain"
)

// rawItem is one AI-written story as found in the response
type rawItem struct {
	Headline    string `json:"headline"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

func (r rawItem) headline() string {
	if h := strings.TrimSpace(r.Headline); h != "" {
		return h
	}
	return strings.TrimSpace(r.Title)
}

func (r rawItem) summary() string {
	if s := strings.TrimSpace(r.Summary); s != "" {
		return s
	}
	if s := strings.TrimSpace(r.Description); s != "" {
		return s
	}
	return domain.NoDescription
}

// parseStrategy extracts items from the response text, ok=false passes to the next strategy
type parseStrategy func(text string) (items []rawItem, ok bool)

// parseStrategies are applied in order, first success wins
var parseStrategies = []parseStrategy{arrayFragment, wholeJSON}

var errNoJSON = errors.New("no json array found")

// parseItems runs the strategy chain over text. It never fails hard: on total failure it returns
// no items together with *domain.ParseError for reporting.
func parseItems(source, text string) ([]rawItem, error) {
	for _, strategy := range parseStrategies {
		if items, ok := strategy(text); ok {
			return items, nil
		}
	}
	return nil, &domain.ParseError{Source: source, Err: errNoJSON}
}

// arrayFragment decodes the first [...] fragment holding an array of stories, models like to wrap
// JSON with prose and the prose may carry brackets of its own, e.g. "[1]"
func arrayFragment(text string) ([]rawItem, bool) {
	for i := 0; i < len(text); i++ {
		off := strings.IndexByte(text[i:], '[')
		if off < 0 {
			return nil, false
		}
		i += off
		var items []rawItem
		// decoder stops after the first value, trailing prose is ignored
		if err := json.NewDecoder(strings.NewReader(text[i:])).Decode(&items); err == nil {
			return items, true
		}
	}
	return nil, false
}

// wholeJSON parses the full text as array, or as object with the array under a well-known key
func wholeJSON(text string) ([]rawItem, bool) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var items []rawItem
	if err := json.Unmarshal([]byte(text), &items); err == nil {
		return items, true
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, false
	}
	for _, key := range []string{"news", "articles", "items", "stories"} {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, true
		}
	}
	// a single story object
	var single rawItem
	if err := json.Unmarshal([]byte(text), &single); err == nil && single.headline() != "" {
		return []rawItem{single}, true
	}
	return nil, false
}
