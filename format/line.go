package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/sst/javasst/symbols"
)

// LineEncoder writes one tab-separated line per declaration.
type LineEncoder struct {
	w     io.Writer
	class *symbols.Scope
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(class *symbols.Scope) error {
	e.class = class
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "class\t%s\n", className(e.class))

	for _, d := range e.class.Declarations() {
		switch d := d.(type) {
		case *symbols.Constant:
			fmt.Fprintf(&sb, "constant\t%s\t%s\t%s\n", d.Name(), d.Type, constantValue(d))
		case *symbols.Variable:
			fmt.Fprintf(&sb, "field\t%s\t%s\n", d.Name(), d.Type)
		case *symbols.Procedure:
			fmt.Fprintf(&sb, "method\t%s\t%s\t%s\n", d.Name(), d.Result, parametersStr(d.Params))
		}
	}
	return []byte(sb.String()), nil
}

func constantValue(c *symbols.Constant) string {
	if !c.Evaluated {
		return "?"
	}
	return fmt.Sprint(c.Value)
}

func parametersStr(params []*symbols.Variable) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Type.String() + " " + p.Name()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
