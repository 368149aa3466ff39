package nlsearch

import (
	"encoding/json"
	"strings"

	"github.com/arjunm592/airtravel/internal/domain"
)

// rawFilters accepts both the from/to naming the prompt asks for and the
// origin/destination naming some models produce anyway.
type rawFilters struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	TravelClass string `json:"travel_class"`
}

func (r rawFilters) toFilters() domain.SearchFilters {
	f := domain.SearchFilters{
		Origin:      r.From,
		Destination: r.To,
		Date:        r.Date,
		TravelClass: r.TravelClass,
	}
	if f.Origin == "" {
		f.Origin = r.Origin
	}
	if f.Destination == "" {
		f.Destination = r.Destination
	}
	return f
}

// ParseFilters recovers a filter object from a model response. Stage one
// parses the whole body as JSON; stage two tries each balanced {...}
// substring in order; stage three is the all-empty default. It never fails.
func ParseFilters(raw string) domain.SearchFilters {
	raw = strings.TrimSpace(raw)

	var direct rawFilters
	if err := json.Unmarshal([]byte(raw), &direct); err == nil {
		return direct.toFilters()
	}

	for start := 0; start < len(raw); {
		open := strings.IndexByte(raw[start:], '{')
		if open < 0 {
			break
		}
		open += start

		candidate, ok := balancedObject(raw[open:])
		if !ok {
			break
		}

		var embedded rawFilters
		if err := json.Unmarshal([]byte(candidate), &embedded); err == nil {
			return embedded.toFilters()
		}
		start = open + 1
	}

	return domain.SearchFilters{}
}

// balancedObject returns the prefix of s spanning the first balanced brace
// pair, ignoring braces inside JSON strings.
func balancedObject(s string) (string, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}
