package greibach

import (
	"testing"
)

func TestSymbolCompare(t *testing.T) {
	a := T("a")
	A := V("A", 1)
	Z := H("Z1", 1)
	if a.Compare(A) >= 0 {
		t.Errorf("expected terminal %v < variable %v", a, A)
	}
	if A.Compare(Z) >= 0 {
		t.Errorf("expected variable %v < helper %v", A, Z)
	}
	if A.Compare(V("A", 1)) != 0 {
		t.Errorf("expected structural equality for identical variables")
	}
	if T("A").Compare(V("A", 0)) == 0 {
		t.Errorf("terminal and variable of the same name must be distinct")
	}
	if V("A", 1).Compare(V("A", 2)) >= 0 {
		t.Errorf("expected order to break ties between same-name variables")
	}
}

func TestBodyCompare(t *testing.T) {
	A, B := V("A", 1), V("B", 2)
	ab := Body{T("a"), B}
	if ab.Compare(Body{T("a"), B}) != 0 {
		t.Errorf("expected structural equality of equal bodies")
	}
	if ab.Compare(Body{T("a")}) <= 0 {
		t.Errorf("expected longer body to sort after its prefix")
	}
	if (Body{A}).Compare(Body{B}) >= 0 {
		t.Errorf("expected A < B")
	}
}

func TestBodyHeadTail(t *testing.T) {
	A := V("A", 1)
	b := Body{A, T("c")}
	if !b.LeadsWith(A) {
		t.Errorf("expected body %v to lead with %v", b, A)
	}
	if b.Head() != A {
		t.Errorf("expected head %v, got %v", A, b.Head())
	}
	tail := b.Tail()
	if len(tail) != 1 || tail[0] != T("c") {
		t.Errorf("expected tail [c], got %v", tail)
	}
	cc := Concat(Body{T("x")}, tail)
	if cc.String() != "x c" {
		t.Errorf("expected concatenation 'x c', got %q", cc)
	}
}
