package stackup

import "strings"

// File represents a complete stackup description file. A file usually holds
// one stackup but may describe several named ones.
type File struct {
	Stackups []*Stackup `parser:"@@+"`
}

// Stackup represents one named board stackup.
// Example: stackup MAIN is ... end MAIN;
type Stackup struct {
	Name    string   `parser:"KwStackup @Ident KwIs"`
	Layers  []*Layer `parser:"@@*"`
	EndName string   `parser:"KwEnd @Ident? Semicolon"`
}

// Layer represents one routing layer entry.
// Example: microstrip TOP : er 4.16 height 3.91 width 6.16;
type Layer struct {
	Kind   string   `parser:"@( KwMicrostrip | KwStripline )"`
	Name   string   `parser:"@Ident"`
	Params []*Param `parser:"Colon @@+ Semicolon"`
}

// Param is a single named numeric parameter of a layer.
type Param struct {
	Name  string  `parser:"@Ident"`
	Value float64 `parser:"@( Real | Integer )"`
}

// Find returns the stackup with the given name, or nil.
func (f *File) Find(name string) *Stackup {
	for _, s := range f.Stackups {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// FirstLayer returns the first layer of the given kind, or nil. Kind
// comparison is against the keyword as written in the grammar ("microstrip"
// or "stripline", any case).
func (s *Stackup) FirstLayer(kind string) *Layer {
	for _, l := range s.Layers {
		if strings.EqualFold(l.Kind, kind) {
			return l
		}
	}
	return nil
}

// paramMap flattens the parameter list; a repeated name keeps the last value.
func (l *Layer) paramMap() map[string]float64 {
	m := make(map[string]float64, len(l.Params))
	for _, p := range l.Params {
		m[strings.ToLower(p.Name)] = p.Value
	}
	return m
}
