package decision

import "offerLens/domain"

// GroupReasonCodes buckets free-text reason codes by case-insensitive
// substring heuristics. Rules evaluate in priority order and the first match
// wins; input order is preserved within each bucket.
func GroupReasonCodes(codes []string) domain.ReasonGroups {
	groups := domain.ReasonGroups{
		Filters:   []string{},
		Selection: []string{},
		Fallback:  []string{},
		Other:     []string{},
	}

	for _, code := range codes {
		switch {
		case containsAnyFold(code, "filter", "eligib", "blocked"):
			groups.Filters = append(groups.Filters, code)
		case containsAnyFold(code, "select", "recommend", "rank"):
			groups.Selection = append(groups.Selection, code)
		case containsAnyFold(code, "fallback", "waitlist", "transfer", "text"):
			groups.Fallback = append(groups.Fallback, code)
		default:
			groups.Other = append(groups.Other, code)
		}
	}

	return groups
}

func containsAnyFold(s string, substrings ...string) bool {
	for _, substr := range substrings {
		if containsFold(s, substr) {
			return true
		}
	}
	return false
}
