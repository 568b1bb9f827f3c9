package analysis

import (
	"reflect"
	"testing"
)

func TestTermSet(t *testing.T) {
	ts := newTermSet()
	if !ts.add('b') || !ts.add('a') {
		t.Errorf("expected new members to be reported as added")
	}
	if ts.add('b') {
		t.Errorf("expected duplicate member not to be added")
	}
	if ts.Size() != 2 || !ts.Contains('a') || ts.Contains('c') {
		t.Errorf("unexpected set content: %v", ts)
	}
	if s := ts.String(); s != "{b, a}" {
		t.Errorf("expected insertion order {b, a}, have %s", s)
	}
	if s := string(ts.Sorted()); s != "ab" {
		t.Errorf("expected sorted members 'ab', have %q", s)
	}
	other := newTermSet()
	other.add('a')
	other.add('c')
	if !ts.addAll(other) || ts.addAll(other) || ts.addAll(ts) {
		t.Errorf("addAll should report growth exactly once")
	}
	reordered := newTermSet()
	for _, c := range "cab" {
		reordered.add(c)
	}
	if !ts.Equals(reordered) || !reordered.Equals(ts) {
		t.Errorf("expected %v to equal %v", ts, reordered)
	}
	if ts.Equals(other) {
		t.Errorf("expected %v to differ from %v", ts, other)
	}
}

func TestTermSetSubset(t *testing.T) {
	ab, abc := termSetOf("ba"), termSetOf("cab")
	if !ab.SubsetOf(abc) || abc.SubsetOf(ab) {
		t.Errorf("expected %v to be a proper subset of %v", ab, abc)
	}
	empty := newTermSet()
	if !empty.SubsetOf(ab) || !empty.SubsetOf(empty) || ab.SubsetOf(empty) {
		t.Errorf("expected the empty set to be a subset of every set, and only of those")
	}
	var none *TermSet
	if !none.SubsetOf(ab) || none.Equals(ab) {
		t.Errorf("expected a nil set to behave like an empty one")
	}
	if termSetOf("ab").String() != "{a, b}" {
		t.Errorf("expected string members in order, have %v", termSetOf("ab"))
	}
}

func TestSummaryInclusion(t *testing.T) {
	small := Summary{Entries: []Entry{{Nonterminal: "S", First: "ab", Follow: ""}}}
	large := Summary{Entries: []Entry{{Nonterminal: "S", Nullable: true, First: "abc", Follow: "x"}}}
	if !small.IncludedIn(large) {
		t.Errorf("expected %v to be included in %v", small, large)
	}
	if large.IncludedIn(small) {
		t.Errorf("expected %v not to be included in %v", large, small)
	}
	moved := Summary{Entries: []Entry{{Nonterminal: "S", First: "ad"}}}
	if moved.IncludedIn(large) {
		t.Errorf("expected a set with a foreign member not to be included")
	}
}

func TestTermSetReadOnly(t *testing.T) {
	typ := reflect.TypeOf(&TermSet{})
	for i := 0; i < typ.NumMethod(); i++ {
		switch name := typ.Method(i).Name; name {
		case "Contains", "Size", "Values", "Sorted", "SubsetOf", "Equals", "String":
		default:
			t.Errorf("term sets should offer read access only, found method %s", name)
		}
	}
}
