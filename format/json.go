package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/sst/javasst/symbols"
)

type JSONEncoder struct {
	w     io.Writer
	class *symbols.Scope
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(class *symbols.Scope) error {
	e.class = class
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.class, "", "  ")
}
