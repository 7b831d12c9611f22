package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/sst/javasst/symbols"
)

// JavaEncoder writes the declarations of a class as Java source with empty
// method bodies. Constants whose value is deferred keep a comment in place of
// their initializer.
type JavaEncoder struct {
	w     io.Writer
	class *symbols.Scope
}

func NewJavaEncoder(w io.Writer) *JavaEncoder {
	return &JavaEncoder{w: w}
}

func (e *JavaEncoder) Encode(class *symbols.Scope) error {
	e.class = class
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JavaEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("class ")
	sb.WriteString(className(e.class))
	sb.WriteString(" {\n")

	for _, d := range e.class.Declarations() {
		switch d := d.(type) {
		case *symbols.Constant:
			if d.Evaluated {
				fmt.Fprintf(&sb, "    final %s %s = %d;\n", d.Type, d.Name(), d.Value)
			} else {
				fmt.Fprintf(&sb, "    final %s %s = /* deferred */;\n", d.Type, d.Name())
			}
		case *symbols.Variable:
			fmt.Fprintf(&sb, "    %s %s;\n", d.Type, d.Name())
		}
	}

	for _, d := range e.class.Declarations() {
		if proc, ok := d.(*symbols.Procedure); ok {
			fmt.Fprintf(&sb, "\n    public %s %s%s {\n    }\n", proc.Result, proc.Name(), parametersStr(proc.Params))
		}
	}

	sb.WriteString("}\n")
	return []byte(sb.String()), nil
}
