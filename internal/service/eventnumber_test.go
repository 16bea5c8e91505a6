package service

import (
	"testing"

	"staffing-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestParseEventNumber(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOK     bool
		wantNumber string
		wantTag    string
	}{
		{
			name:       "standard core name",
			input:      "606001-CORE-Super Widget Demo",
			wantOK:     true,
			wantNumber: "606001",
			wantTag:    "CORE",
		},
		{
			name:       "supervisor companion",
			input:      "606001-Supervisor-Super Widget Demo",
			wantOK:     true,
			wantNumber: "606001",
			wantTag:    "Supervisor",
		},
		{
			name:       "spacing around separator",
			input:      "  606001 - CORE - Super Widget Demo  ",
			wantOK:     true,
			wantNumber: "606001",
			wantTag:    "CORE",
		},
		{
			name:       "tag terminated by space",
			input:      "606001-CORE Widget",
			wantOK:     true,
			wantNumber: "606001",
			wantTag:    "CORE",
		},
		{
			name:   "prefix too short",
			input:  "60601-CORE-Widget",
			wantOK: false,
		},
		{
			name:   "prefix too long",
			input:  "6060011-CORE-Widget",
			wantOK: false,
		},
		{
			name:   "no numeric prefix",
			input:  "Super Widget Demo",
			wantOK: false,
		},
		{
			name:   "missing separator",
			input:  "606001 CORE Widget",
			wantOK: false,
		},
		{
			name:   "number only",
			input:  "606001",
			wantOK: false,
		},
		{
			name:   "separator with no tag",
			input:  "606001-",
			wantOK: false,
		},
		{
			name:   "empty string",
			input:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := ParseEventNumber(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantNumber, token.Number)
				assert.Equal(t, tt.wantTag, token.Tag)
			}
		})
	}
}

func TestEventTokenMatchesType(t *testing.T) {
	token, ok := ParseEventNumber("606001-core-Widget")
	assert.True(t, ok)

	assert.True(t, token.MatchesType(models.EventTypeCore))
	assert.False(t, token.MatchesType(models.EventTypeSupervisor))

	upper, ok := ParseEventNumber("606001-SUPERVISOR-Widget")
	assert.True(t, ok)
	assert.True(t, upper.MatchesType(models.EventTypeSupervisor))
}

func TestOverlaps(t *testing.T) {
	base := mustTime(t, "2026-08-10T10:00:00Z")

	// Half-open intervals: touching endpoints do not overlap.
	assert.False(t, Overlaps(base, base.Add(2*hour), base.Add(2*hour), base.Add(4*hour)))
	assert.True(t, Overlaps(base, base.Add(2*hour), base.Add(hour), base.Add(3*hour)))
	assert.True(t, Overlaps(base, base.Add(4*hour), base.Add(hour), base.Add(2*hour)))
	assert.False(t, Overlaps(base, base.Add(hour), base.Add(2*hour), base.Add(3*hour)))
}

func TestWeekBounds(t *testing.T) {
	// 2026-08-12 is a Wednesday; its week runs Monday the 10th to Monday the 17th.
	wednesday := mustTime(t, "2026-08-12T15:30:00Z")
	start, end := WeekBounds(wednesday)
	assert.Equal(t, "2026-08-10", start.Format("2006-01-02"))
	assert.Equal(t, "2026-08-17", end.Format("2006-01-02"))

	// A Monday is its own week start.
	monday := mustTime(t, "2026-08-10T00:00:00Z")
	start, end = WeekBounds(monday)
	assert.Equal(t, "2026-08-10", start.Format("2006-01-02"))
	assert.Equal(t, "2026-08-17", end.Format("2006-01-02"))

	// A Sunday belongs to the week that started the previous Monday.
	sunday := mustTime(t, "2026-08-16T23:59:00Z")
	start, _ = WeekBounds(sunday)
	assert.Equal(t, "2026-08-10", start.Format("2006-01-02"))
}
