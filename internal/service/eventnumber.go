package service

import (
	"strings"
	"unicode"

	"staffing-backend/internal/database/models"
)

// eventNumberWidth is the fixed width of the numeric prefix in event display
// names, e.g. "606001-CORE-Widget".
const eventNumberWidth = 6

// EventToken is the structured result of parsing an event display name.
// Number is the fixed-width event-number prefix shared by paired events;
// Tag is the event-type tag that follows it.
type EventToken struct {
	Number string
	Tag    string
}

// MatchesType reports whether the token's tag names the given event type.
// Matching is case-insensitive.
func (t EventToken) MatchesType(eventType models.EventType) bool {
	return strings.EqualFold(t.Tag, string(eventType))
}

// ParseEventNumber extracts the event-number token from a display name.
// The expected shape is "<6 digits>-<tag>[-<description>]" with tolerance for
// surrounding whitespace and spacing around the separators. A name that does
// not carry a well-formed token returns ok=false; that is a normal outcome,
// not an error.
func ParseEventNumber(displayName string) (EventToken, bool) {
	s := strings.TrimSpace(displayName)
	if len(s) < eventNumberWidth+1 {
		return EventToken{}, false
	}

	number := s[:eventNumberWidth]
	for _, r := range number {
		if !unicode.IsDigit(r) {
			return EventToken{}, false
		}
	}

	rest := s[eventNumberWidth:]
	// A wider numeric prefix means the token is not the expected fixed width.
	if len(rest) > 0 && unicode.IsDigit(rune(rest[0])) {
		return EventToken{}, false
	}

	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	if !strings.HasPrefix(rest, "-") {
		return EventToken{}, false
	}
	rest = strings.TrimLeftFunc(strings.TrimPrefix(rest, "-"), unicode.IsSpace)
	if rest == "" {
		return EventToken{}, false
	}

	tag := rest
	if idx := strings.IndexAny(rest, "- "); idx >= 0 {
		tag = rest[:idx]
	}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return EventToken{}, false
	}

	return EventToken{Number: number, Tag: tag}, true
}
