package analysis

import (
	"bytes"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/emirpasic/gods/utils"
)

// TermSet is a set of terminal characters. It remembers the order in which
// terminals have been inserted, but membership is all that counts for
// equality. Sets are filled by the analysis only; clients get read access.
type TermSet struct {
	set *linkedhashset.Set
}

func newTermSet() *TermSet {
	return &TermSet{set: linkedhashset.New()}
}

// termSetOf creates a set from the characters of a string.
func termSetOf(terms string) *TermSet {
	ts := newTermSet()
	for _, t := range terms {
		ts.set.Add(t)
	}
	return ts
}

// add inserts a terminal, returning true if it has not been a member before.
func (ts *TermSet) add(t rune) bool {
	if ts.set.Contains(t) {
		return false
	}
	ts.set.Add(t)
	return true
}

// addAll inserts every member of other, returning true if ts has grown.
func (ts *TermSet) addAll(other *TermSet) bool {
	if other == nil || other == ts {
		return false
	}
	changed := false
	for _, t := range other.Values() {
		if ts.add(t) {
			changed = true
		}
	}
	return changed
}

// Contains checks membership of a terminal.
func (ts *TermSet) Contains(t rune) bool {
	if ts == nil {
		return false
	}
	return ts.set.Contains(t)
}

// Size is the number of members.
func (ts *TermSet) Size() int {
	if ts == nil {
		return 0
	}
	return ts.set.Size()
}

// Values returns the members in insertion order.
func (ts *TermSet) Values() []rune {
	if ts == nil {
		return nil
	}
	values := make([]rune, 0, ts.set.Size())
	for _, v := range ts.set.Values() {
		values = append(values, v.(rune))
	}
	return values
}

// Sorted returns the members in ascending order.
func (ts *TermSet) Sorted() []rune {
	if ts == nil {
		return nil
	}
	values := ts.set.Values()
	utils.Sort(values, utils.RuneComparator)
	sorted := make([]rune, 0, len(values))
	for _, v := range values {
		sorted = append(sorted, v.(rune))
	}
	return sorted
}

// SubsetOf is true if every member of ts is a member of other.
func (ts *TermSet) SubsetOf(other *TermSet) bool {
	if ts.Size() == 0 {
		return true
	}
	if other.Size() == 0 {
		return false
	}
	return other.set.Contains(ts.set.Values()...)
}

// Equals is true if both sets have the same members, regardless of order.
func (ts *TermSet) Equals(other *TermSet) bool {
	return ts.Size() == other.Size() && ts.SubsetOf(other)
}

// String lists the members in insertion order, e.g. "{a, b}".
func (ts *TermSet) String() string {
	return runeSetString(ts.Values())
}

func runeSetString(terms []rune) string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, t := range terms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteRune(t)
	}
	b.WriteString("}")
	return b.String()
}
