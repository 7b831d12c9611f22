package symbols

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/sst/javasst/token"
)

func pos(line, col int) token.Position {
	return token.Position{Line: line, Column: col}
}

func TestInsertRejectsDuplicateInSameScope(t *testing.T) {
	s := NewScope(ScopeClass, nil)
	if err := s.Insert(NewVariable("x", pos(1, 1), TypeInt)); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	err := s.Insert(NewConstant("x", pos(2, 1), TypeInt))
	if !errors.Is(err, ErrDuplicateDeclaration) {
		t.Fatalf("got %v, want ErrDuplicateDeclaration", err)
	}
	var dup *DuplicateDeclarationError
	if !errors.As(err, &dup) {
		t.Fatalf("got %T, want *DuplicateDeclarationError", err)
	}
	if dup.Previous.Kind() != KindVariable || dup.Duplicate.Kind() != KindConstant {
		t.Errorf("previous %v, duplicate %v", dup.Previous.Kind(), dup.Duplicate.Kind())
	}
	if !strings.Contains(err.Error(), `"x"`) {
		t.Errorf("message %q does not name x", err.Error())
	}
	if s.Len() != 1 {
		t.Errorf("scope has %d members, want 1", s.Len())
	}
}

func TestShadowingOuterScope(t *testing.T) {
	table := NewTable()
	table.Enter(ScopeClass)
	outer := NewVariable("x", pos(1, 1), TypeInt)
	if err := table.Insert(outer); err != nil {
		t.Fatal(err)
	}

	table.Enter(ScopeMethod)
	inner := NewParameter("x", pos(2, 1), TypeInt)
	if err := table.Insert(inner); err != nil {
		t.Fatalf("shadowing rejected: %v", err)
	}
	if d, _ := table.Lookup("x"); d != inner {
		t.Errorf("lookup in method scope found %v, want the parameter", d)
	}

	table.Exit()
	if d, _ := table.Lookup("x"); d != outer {
		t.Errorf("lookup after exit found %v, want the field", d)
	}
}

func TestLookupWalksParents(t *testing.T) {
	class := NewScope(ScopeClass, nil)
	m := NewProcedure("m", pos(1, 1), TypeVoid, nil)
	if err := class.Insert(m); err != nil {
		t.Fatal(err)
	}
	method := NewScope(ScopeMethod, class)
	loop := NewScope(ScopeWhile, method)

	if d, ok := Lookup("m", loop); !ok || d != m {
		t.Errorf("Lookup(m) = %v, %v", d, ok)
	}
	if _, ok := loop.LookupLocal("m"); ok {
		t.Error("LookupLocal found a parent member")
	}
	if _, ok := Lookup("missing", loop); ok {
		t.Error("found undeclared name")
	}
}

func TestHeadIsNotAMember(t *testing.T) {
	table := NewTable()
	if err := table.SetHead(NewClass("A", pos(1, 7))); err == nil {
		t.Error("SetHead without a scope succeeded")
	}

	s := table.Enter(ScopeClass)
	if err := table.SetHead(NewClass("A", pos(1, 7))); err != nil {
		t.Fatal(err)
	}
	if s.Head() == nil || s.Head().Name() != "A" {
		t.Fatalf("head = %v", s.Head())
	}
	if _, ok := s.Lookup("A"); ok {
		t.Error("head found by Lookup")
	}
	if err := s.Insert(NewVariable("A", pos(2, 1), TypeInt)); err != nil {
		t.Errorf("member named like the head rejected: %v", err)
	}
}

func TestTableExitNotifiesObserver(t *testing.T) {
	table := NewTable()
	var closed []ScopeKind
	table.OnExit(func(s *Scope) { closed = append(closed, s.Kind) })

	table.Enter(ScopeClass)
	table.Enter(ScopeMethod)
	table.Enter(ScopeIf)
	table.Exit()
	table.Enter(ScopeWhile)
	table.Exit()
	table.Exit()
	table.Exit()
	table.Exit()

	want := []ScopeKind{ScopeIf, ScopeWhile, ScopeMethod, ScopeClass}
	if len(closed) != len(want) {
		t.Fatalf("closed %v, want %v", closed, want)
	}
	for i := range want {
		if closed[i] != want[i] {
			t.Errorf("closed[%d] = %v, want %v", i, closed[i], want[i])
		}
	}
	if table.Current() != nil {
		t.Error("table still has a current scope")
	}
	if err := table.Insert(NewVariable("x", pos(1, 1), TypeInt)); err == nil {
		t.Error("insert without a scope succeeded")
	}
}

func TestScopeJSON(t *testing.T) {
	s := NewScope(ScopeClass, nil)
	s.SetHead(NewClass("A", pos(1, 7)))
	c := NewConstant("N", pos(2, 3), TypeInt)
	c.Value, c.Evaluated = 7, true
	s.Insert(c)
	s.Insert(NewProcedure("m", pos(3, 3), TypeInt, []*Variable{NewParameter("a", pos(3, 16), TypeInt)}))

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	for _, want := range []string{
		`"kind":"class"`,
		`"head":{"kind":"class","name":"A"`,
		`"name":"N"`,
		`"value":7`,
		`"parameters":[{"kind":"variable","name":"a"`,
		`"parameter":true`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON %s missing %s", got, want)
		}
	}
}
