package decision

import (
	"sort"
	"strings"

	"offerLens/domain"
)

// extractContext derives property identity, strategy mode, timezone, policies,
// and capability flags from the record and its debug sub-objects. Each scalar
// field walks an ordered chain of bags; the first bag carrying any spelling of
// the field wins.
func extractContext(record map[string]any, debug domain.DecisionDebug) domain.PropertyContext {
	profileFinal := asRecord(debug.ProfileFinal)

	bags := []map[string]any{
		record,
		asRecord(firstPresent(record["strategy"], record["strategy_context"])),
		asRecord(debug.ResolvedRequest),
		profileFinal,
		asRecord(profileFinal["propertyContext"]),
		asRecord(profileFinal["property_context"]),
		asRecord(profileFinal["property"]),
	}

	return domain.PropertyContext{
		PropertyID:   chainText(bags, "propertyId", "property_id"),
		Currency:     chainText(bags, "currency"),
		StrategyMode: chainText(bags, "strategyMode", "strategy_mode", "mode"),
		Timezone:     chainText(bags, "timezone", "time_zone", "timeZone"),
		Policies:     collectPolicies(record, profileFinal),
		Capabilities: collectCapabilities(record, profileFinal),
	}
}

func chainText(bags []map[string]any, keys ...string) string {
	for _, bag := range bags {
		for _, key := range keys {
			if s := toText(bag[key]); s != "" {
				return s
			}
		}
	}
	return "-"
}

// collectPolicies unions every policy string found across the known sources.
// Array entries that are objects contribute their first present summary-like
// field. The result is deduplicated in order of first discovery.
func collectPolicies(record, profileFinal map[string]any) []string {
	policyBag := asRecord(record["policy"])

	sources := []any{
		record["policies"],
		record["disclosures"],
		record["stayPolicies"],
		record["stay_policies"],
		policyBag["stayPolicies"],
		policyBag["stay_policies"],
		profileFinal["policies"],
		profileFinal["stayPolicies"],
		profileFinal["stay_policies"],
	}

	seen := map[string]bool{}
	out := []string{}
	for _, source := range sources {
		for _, entry := range asSlice(source) {
			text := toText(entry)
			if text == "" {
				bag := asRecord(entry)
				text = firstText(bag["summary"], bag["label"], bag["description"], bag["name"])
			}
			if text == "" || seen[text] {
				continue
			}
			seen[text] = true
			out = append(out, text)
		}
	}

	return out
}

func collectCapabilities(record, profileFinal map[string]any) []string {
	sources := []any{
		record["capabilities"],
		record["fallbackCapabilities"],
		record["fallback_capabilities"],
		profileFinal["capabilities"],
		profileFinal["fallbackCapabilities"],
		profileFinal["fallback_capabilities"],
	}

	seen := map[string]bool{}
	out := []string{}
	for _, source := range sources {
		for _, entry := range flattenCapabilities("", source) {
			if seen[entry] {
				continue
			}
			seen[entry] = true
			out = append(out, entry)
		}
	}

	return out
}

// flattenCapabilities renders every leaf of a capability bag as a
// "path.to.flag: value" line. Booleans become on/off, string arrays join with
// commas, nested objects extend the path. Empty strings and empty arrays are
// skipped. Keys sort alphabetically per level since JSON decoding does not
// preserve upstream key order.
func flattenCapabilities(prefix string, value any) []string {
	switch t := value.(type) {
	case bool:
		if prefix == "" {
			return nil
		}
		if t {
			return []string{prefix + ": on"}
		}
		return []string{prefix + ": off"}
	case string:
		if prefix == "" || strings.TrimSpace(t) == "" {
			return nil
		}
		return []string{prefix + ": " + t}
	case []any:
		items := toStringSlice(t)
		if prefix == "" || len(items) == 0 {
			return nil
		}
		return []string{prefix + ": " + strings.Join(items, ", ")}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		out := []string{}
		for _, key := range keys {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			out = append(out, flattenCapabilities(path, t[key])...)
		}
		return out
	}
	return nil
}
