package poetry

// LabelGroups is the result of grouping line indices by rhyme label.
// Indices within a group ascend; Order records labels by first appearance
// so callers can produce deterministic reports (Go maps iterate in random
// order, unlike the insertion-ordered grouping the checks are defined
// against).
type LabelGroups struct {
	Groups map[string][]int
	Order  []string
}

// GroupByLabel groups line indices by their rhyme-scheme label. Every label
// is a key, including UnconstrainedLabel; its special meaning is applied by
// the caller, not here.
func GroupByLabel(scheme []string) *LabelGroups {
	g := &LabelGroups{Groups: make(map[string][]int)}
	for i, label := range scheme {
		if _, seen := g.Groups[label]; !seen {
			g.Order = append(g.Order, label)
		}
		g.Groups[label] = append(g.Groups[label], i)
	}
	return g
}
