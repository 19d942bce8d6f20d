package fuzzy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/paybridge/pkg/fuzzy"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "department", "department", 1.0},
		{"case insensitive", "Department", "department", 1.0},
		{"surrounding whitespace", "  department  ", "department", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "", "department", 0.0},
		// one substitution across three runes, not four bytes
		{"accented labels measured in runes", "dép", "dep", 2.0 / 3.0},
		{"accented label exact", "département", "département", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, fuzzy.Ratio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestMatch(t *testing.T) {
	t.Run("tolerates minor punctuation differences", func(t *testing.T) {
		assert.True(t, fuzzy.Match("Staff First Name:", "staff first name"))
		assert.True(t, fuzzy.Match("staff  first name", "staff first name"))
		assert.True(t, fuzzy.Match("Departments", "department"))
	})

	t.Run("rejects unrelated short tokens", func(t *testing.T) {
		assert.False(t, fuzzy.Match("Date", "department"))
		assert.False(t, fuzzy.Match("Name", "staff first name"))
		assert.False(t, fuzzy.Match("", "department"))
	})
}

func TestMatchWithCutoff(t *testing.T) {
	// "departmant" is one edit away from "department": ratio 0.9.
	assert.True(t, fuzzy.MatchWithCutoff("departmant", "department", 0.9))
	assert.False(t, fuzzy.MatchWithCutoff("departmant", "department", 0.95))
}
