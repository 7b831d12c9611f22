package symbols

import "errors"

var errNoScope = errors.New("no open scope")

// Table tracks the current scope while a parse is in progress. Scopes are
// opened and closed in strict LIFO order.
type Table struct {
	current *Scope
	onExit  func(*Scope)
}

func NewTable() *Table {
	return &Table{}
}

// OnExit registers fn to receive every scope as it is closed.
func (t *Table) OnExit(fn func(*Scope)) {
	t.onExit = fn
}

func (t *Table) Current() *Scope {
	return t.current
}

// Enter pushes a new empty scope whose parent is the current scope.
func (t *Table) Enter(kind ScopeKind) *Scope {
	t.current = NewScope(kind, t.current)
	return t.current
}

// Exit pops back to the parent of the current scope.
func (t *Table) Exit() {
	if t.current == nil {
		return
	}
	closed := t.current
	t.current = closed.Parent
	if t.onExit != nil {
		t.onExit(closed)
	}
}

func (t *Table) Insert(d Declaration) error {
	if t.current == nil {
		return errNoScope
	}
	return t.current.Insert(d)
}

func (t *Table) SetHead(d Declaration) error {
	if t.current == nil {
		return errNoScope
	}
	t.current.SetHead(d)
	return nil
}

func (t *Table) Lookup(name string) (Declaration, bool) {
	return Lookup(name, t.current)
}
