package symbols

import "encoding/json"

type jsonScope struct {
	Kind         string             `json:"kind"`
	Head         *jsonDeclaration   `json:"head,omitempty"`
	Declarations []*jsonDeclaration `json:"declarations,omitempty"`
}

type jsonDeclaration struct {
	Kind       string             `json:"kind"`
	Name       string             `json:"name"`
	Position   *jsonPosition      `json:"position,omitempty"`
	Type       string             `json:"type,omitempty"`
	Parameter  bool               `json:"parameter,omitempty"`
	Value      *int32             `json:"value,omitempty"`
	Parameters []*jsonDeclaration `json:"parameters,omitempty"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (s *Scope) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.toJSON())
}

func (s *Scope) toJSON() *jsonScope {
	js := &jsonScope{Kind: s.Kind.String()}
	if s.head != nil {
		js.Head = declarationToJSON(s.head)
	}
	for _, d := range s.order {
		js.Declarations = append(js.Declarations, declarationToJSON(d))
	}
	return js
}

func declarationToJSON(d Declaration) *jsonDeclaration {
	jd := &jsonDeclaration{
		Kind: d.Kind().String(),
		Name: d.Name(),
	}
	if pos := d.Pos(); pos.Line != 0 {
		jd.Position = &jsonPosition{Line: pos.Line, Column: pos.Column}
	}

	switch d := d.(type) {
	case *Variable:
		jd.Type = d.Type.String()
		jd.Parameter = d.Parameter
	case *Constant:
		jd.Type = d.Type.String()
		if d.Evaluated {
			v := d.Value
			jd.Value = &v
		}
	case *Procedure:
		jd.Type = d.Result.String()
		for _, p := range d.Params {
			jd.Parameters = append(jd.Parameters, declarationToJSON(p))
		}
	}
	return jd
}
