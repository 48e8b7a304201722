package service

import (
	"sort"
	"strings"
)

// Criteria is what the user controls: a tab, an optional explicit status
// set, and a free-text query. An empty Statuses slice means "no status
// filter", not "exclude everything"; explicit statuses take precedence
// over the tab.
type Criteria struct {
	Tab      Tab
	Statuses []Status
	Search   string
}

// Select filters and orders an enriched list for display. Status filter
// and text filter are AND-combined; ordering is newest first with ties
// kept in fetch order. Pure: identical inputs give identical output.
func Select(list []Enriched, cr Criteria) []Enriched {
	statuses := cr.Statuses
	if len(statuses) == 0 {
		statuses = TabStatuses(cr.Tab)
	}

	query := strings.ToLower(strings.TrimSpace(cr.Search))

	out := make([]Enriched, 0, len(list))
	for _, e := range list {
		if len(statuses) > 0 && !statusIn(Status(e.Status), statuses) {
			continue
		}
		if query != "" && !matchesQuery(e, query) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func statusIn(s Status, set []Status) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}

// matchesQuery checks the service id and, when present, the customer name
// for a case-insensitive substring match.
func matchesQuery(e Enriched, query string) bool {
	if strings.Contains(strings.ToLower(e.IDService), query) {
		return true
	}
	if e.Customer != nil &&
		strings.Contains(strings.ToLower(e.Customer.Name), query) {
		return true
	}
	return false
}
