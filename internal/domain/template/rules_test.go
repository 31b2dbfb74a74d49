package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tablestyles/internal/domain/style"
)

func TestFindRule_ExactStringMatch(t *testing.T) {
	rules := []IndexedRule{
		{Index: "1"},
		{Index: "1", FromBottom: true},
		{Index: "01"},
	}

	assert.Equal(t, 0, FindRule(rules, "1", false))
	assert.Equal(t, 1, FindRule(rules, "1", true))
	assert.Equal(t, 2, FindRule(rules, "01", false))
	assert.Equal(t, -1, FindRule(rules, "01", true))
	assert.Equal(t, -1, FindRule(rules, "2", false))
	assert.Equal(t, -1, FindRule(nil, "1", false))
}

// "01" and "1" address the same row numerically but remain distinct keys.
func TestFindOrCreateRule_DoesNotCanonicaliseIndex(t *testing.T) {
	var rules []IndexedRule
	rules, decls := FindOrCreateRule(rules, "1", false)
	decls[style.PropColor] = "red"

	rules, decls = FindOrCreateRule(rules, "01", false)
	decls[style.PropColor] = "blue"

	require.Len(t, rules, 2)
	assert.Equal(t, "red", rules[0].Declarations[style.PropColor])
	assert.Equal(t, "blue", rules[1].Declarations[style.PropColor])
}

func TestFindOrCreateRule_AppendsInCreationOrder(t *testing.T) {
	var rules []IndexedRule
	rules, _ = FindOrCreateRule(rules, "5", false)
	rules, _ = FindOrCreateRule(rules, "2", false)
	rules, _ = FindOrCreateRule(rules, "5", false)
	rules, _ = FindOrCreateRule(rules, "1", true)

	require.Len(t, rules, 3)
	assert.Equal(t, []string{"5", "2", "1"}, []string{rules[0].Index, rules[1].Index, rules[2].Index})
	for _, r := range rules {
		assert.NotNil(t, r.Declarations)
		assert.Empty(t, r.Declarations)
	}
}

func TestFindOrCreateRule_HitReturnsLiveMap(t *testing.T) {
	rules := []IndexedRule{{Index: "3", FromBottom: true}}
	rules, decls := FindOrCreateRule(rules, "3", true)
	decls[style.PropBgColor] = "#000"

	require.Len(t, rules, 1)
	assert.Equal(t, "#000", rules[0].Declarations[style.PropBgColor])
}

func TestOrderRules(t *testing.T) {
	rules := []IndexedRule{
		{Index: "1", FromBottom: true},
		{Index: "10"},
		{Index: "3", FromBottom: true},
		{Index: "2"},
		{Index: "02"},
	}

	ordered := OrderRules(rules)
	got := make([]string, len(ordered))
	for i, r := range ordered {
		prefix := ""
		if r.FromBottom {
			prefix = "-"
		}
		got[i] = prefix + r.Index
	}
	assert.Equal(t, []string{"2", "02", "10", "-3", "-1"}, got)
	assert.Equal(t, "1", rules[0].Index, "input order must be preserved")
}
