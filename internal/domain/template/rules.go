package template

import "sort"

// FindRule returns the position of the rule keyed by (index, fromBottom), or
// -1. Matching is exact on the index text; no numeric canonicalisation is
// applied.
func FindRule(rules []IndexedRule, index string, fromBottom bool) int {
	for i := range rules {
		if rules[i].Index == index && rules[i].FromBottom == fromBottom {
			return i
		}
	}
	return -1
}

// FindOrCreateRule returns the declarations of the rule keyed by
// (index, fromBottom), appending an empty rule when none exists. The
// returned slice must replace the caller's; the returned map is live and
// may be updated in place.
func FindOrCreateRule(rules []IndexedRule, index string, fromBottom bool) ([]IndexedRule, Declarations) {
	if i := FindRule(rules, index, fromBottom); i >= 0 {
		if rules[i].Declarations == nil {
			rules[i].Declarations = Declarations{}
		}
		return rules, rules[i].Declarations
	}
	rule := IndexedRule{Index: index, FromBottom: fromBottom, Declarations: Declarations{}}
	rules = append(rules, rule)
	return rules, rule.Declarations
}

// mergeDuplicateRules folds rules that share a key into the first one,
// later declarations overriding earlier ones.
func mergeDuplicateRules(rules []IndexedRule) []IndexedRule {
	out := rules[:0]
	for _, r := range rules {
		if i := FindRule(out, r.Index, r.FromBottom); i >= 0 {
			if out[i].Declarations == nil {
				out[i].Declarations = Declarations{}
			}
			for k, v := range r.Declarations {
				out[i].Declarations[k] = v
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

// OrderRules returns the rules in stylesheet order: start-anchored rules by
// ascending position, then bottom-anchored rules from the one furthest
// from the end to the last line. Ties keep list order. The input is not
// modified.
func OrderRules(rules []IndexedRule) []IndexedRule {
	out := make([]IndexedRule, 0, len(rules))
	for _, r := range rules {
		if !r.FromBottom {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return mustIndex(out[i].Index) < mustIndex(out[j].Index)
	})

	start := len(out)
	for _, r := range rules {
		if r.FromBottom {
			out = append(out, r)
		}
	}
	tail := out[start:]
	sort.SliceStable(tail, func(i, j int) bool {
		return mustIndex(tail[i].Index) > mustIndex(tail[j].Index)
	})
	return out
}
