package decision

import (
	"math"
	"strconv"
	"strings"
)

// Loose accessors over decoded JSON. Every extractor in this package is an
// ordered list of these attempts; the first present value wins and absence
// degrades to a documented default, never an error.

func asRecord(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}

// toText accepts strings and numbers. Numbers render in plain decimal form,
// so a configVersion of 1 becomes "1".
func toText(v any) string {
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) != "" {
			return t
		}
	case float64:
		if !math.IsNaN(t) && !math.IsInf(t, 0) {
			return strconv.FormatFloat(t, 'f', -1, 64)
		}
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	}
	return ""
}

func toNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		if strings.TrimSpace(t) == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

func toBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(t) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

func firstText(values ...any) string {
	for _, v := range values {
		if s := toText(v); s != "" {
			return s
		}
	}
	return ""
}

func textOr(fallback string, values ...any) string {
	if s := firstText(values...); s != "" {
		return s
	}
	return fallback
}

func firstNumber(values ...any) (float64, bool) {
	for _, v := range values {
		if n, ok := toNumber(v); ok {
			return n, true
		}
	}
	return 0, false
}

func firstNumberPtr(values ...any) *float64 {
	if n, ok := firstNumber(values...); ok {
		return &n
	}
	return nil
}

func numberOr(fallback float64, values ...any) float64 {
	if n, ok := firstNumber(values...); ok {
		return n
	}
	return fallback
}

func firstSlice(values ...any) []any {
	for _, v := range values {
		if s, ok := v.([]any); ok {
			return s
		}
	}
	return nil
}

// firstStringSlice stringifies every entry of the first array found and drops
// entries that do not render as text.
func firstStringSlice(values ...any) []string {
	for _, v := range values {
		s, ok := v.([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(s))
		for _, item := range s {
			if text := toText(item); text != "" {
				out = append(out, text)
			}
		}
		return out
	}
	return []string{}
}

func toStringSlice(v any) []string {
	if s, ok := v.([]any); ok {
		out := make([]string, 0, len(s))
		for _, item := range s {
			if text := toText(item); text != "" {
				out = append(out, text)
			}
		}
		return out
	}
	if text := toText(v); text != "" {
		return []string{text}
	}
	return []string{}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
