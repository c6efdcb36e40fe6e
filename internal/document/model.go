package document

// Attr is one key/value attribute. Declaration order is preserved wherever
// attributes travel so emitted documents stay stable.
type Attr struct {
	Key   string
	Value Value
}

// Decl is one constraint or actuator declaration: a kind tag plus its
// ordered attributes. Kind tags are never interpreted; unknown kinds pass
// through to the output verbatim.
type Decl struct {
	Kind  string
	Attrs []Attr
}

// Config is the scene-level configuration of one document: compiler and
// solver options plus the declared constraints and actuators. Absent
// sections stay empty. The compiler treats a Config as read-only.
type Config struct {
	Compiler []Attr
	Option   []Attr
	Equality []Decl
	Actuator []Decl
}

// TopologyNode is one body declaration in a declarative scene document.
type TopologyNode struct {
	Label    string
	Joint    *JointDecl
	Children []*TopologyNode
}

// JointDecl is the joint block of a body declaration. The type tag is not
// interpreted here; "free" gets its special treatment during extraction.
type JointDecl struct {
	Type     string
	Position string
	Params   []Attr
}

// Document is one parsed scene document: configuration plus the declared
// top-level bodies. A well-formed topology has exactly one; enforcing that
// is the extractor's job, not the reader's.
type Document struct {
	Config Config
	Bodies []*TopologyNode
}
