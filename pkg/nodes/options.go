package nodes

import "github.com/aretw0/parley/pkg/domain"

// OptionTable is an ordered set of options keyed by label.
// Labels are unique; inserting an existing label replaces its destination
// and keeps its original position.
type OptionTable struct {
	entries []domain.Option
	index   map[string]int
}

// Insert adds label or overrides its destination.
// It reports whether the label was new.
func (t *OptionTable) Insert(label string, to domain.NodeID) bool {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if i, ok := t.index[label]; ok {
		t.entries[i].To = to
		return false
	}
	t.index[label] = len(t.entries)
	t.entries = append(t.entries, domain.Option{Label: label, To: to})
	return true
}

// Lookup returns the destination of label.
func (t *OptionTable) Lookup(label string) (domain.NodeID, bool) {
	i, ok := t.index[label]
	if !ok {
		return domain.Terminal, false
	}
	return t.entries[i].To, true
}

// Len returns the number of distinct labels.
func (t *OptionTable) Len() int {
	return len(t.entries)
}

// All returns a copy of the options in insertion order.
func (t *OptionTable) All() []domain.Option {
	out := make([]domain.Option, len(t.entries))
	copy(out, t.entries)
	return out
}
