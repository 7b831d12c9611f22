// Package format renders the class scope produced by the parser.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/sst/javasst/symbols"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(class *symbols.Scope) error
}

// NewEncoder returns the encoder for the named format: json, line or java.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "line":
		return NewLineEncoder(w), nil
	case "java":
		return NewJavaEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s", name)
}

func className(class *symbols.Scope) string {
	if head := class.Head(); head != nil {
		return head.Name()
	}
	return ""
}
