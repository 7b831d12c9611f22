package lsp

import (
	"errors"

	"github.com/dhamidi/sst/javasst/parser"
	"github.com/dhamidi/sst/javasst/symbols"
	"github.com/dhamidi/sst/javasst/token"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Diagnostic converts a parse error into an LSP diagnostic covering the
// offending token.
func Diagnostic(err error) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	d := protocol.Diagnostic{
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	}

	var (
		syntax *parser.SyntaxError
		eval   *parser.EvalError
		dup    *symbols.DuplicateDeclarationError
	)
	switch {
	case errors.As(err, &syntax):
		d.Range = spanRange(syntax.Got.Span)
	case errors.As(err, &eval):
		d.Range = spanRange(eval.Token.Span)
	case errors.As(err, &dup):
		d.Range = nameRange(dup.Duplicate)
	}
	return d
}

// DocumentSymbols lists the class and its members. Procedures carry their
// parameters as children.
func DocumentSymbols(class *symbols.Scope) []protocol.DocumentSymbol {
	head := class.Head()
	if head == nil {
		return nil
	}
	root := documentSymbol(head, protocol.SymbolKindClass, "")
	for _, d := range class.Declarations() {
		switch d := d.(type) {
		case *symbols.Constant:
			root.Children = append(root.Children, documentSymbol(d, protocol.SymbolKindConstant, d.Type.String()))
		case *symbols.Variable:
			root.Children = append(root.Children, documentSymbol(d, protocol.SymbolKindField, d.Type.String()))
		case *symbols.Procedure:
			method := documentSymbol(d, protocol.SymbolKindMethod, d.Result.String())
			for _, p := range d.Params {
				method.Children = append(method.Children, documentSymbol(p, protocol.SymbolKindVariable, p.Type.String()))
			}
			root.Children = append(root.Children, method)
		}
	}
	return []protocol.DocumentSymbol{root}
}

func documentSymbol(d symbols.Declaration, kind protocol.SymbolKind, detail string) protocol.DocumentSymbol {
	s := protocol.DocumentSymbol{
		Name:           d.Name(),
		Kind:           kind,
		Range:          nameRange(d),
		SelectionRange: nameRange(d),
	}
	if detail != "" {
		s.Detail = &detail
	}
	return s
}

func nameRange(d symbols.Declaration) protocol.Range {
	start := position(d.Pos())
	end := start
	end.Character += protocol.UInteger(len(d.Name()))
	return protocol.Range{Start: start, End: end}
}

func spanRange(span token.Span) protocol.Range {
	return protocol.Range{Start: position(span.Start), End: position(span.End)}
}

// position converts a 1-based line and column into a 0-based LSP position.
func position(pos token.Position) protocol.Position {
	var p protocol.Position
	if pos.Line > 0 {
		p.Line = protocol.UInteger(pos.Line - 1)
	}
	if pos.Column > 0 {
		p.Character = protocol.UInteger(pos.Column - 1)
	}
	return p
}
