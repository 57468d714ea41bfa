package ast

// ObjKind classifies the kind of declaration an Object describes (spec §4.3,
// §9). Only the three file-scope kinds the parser itself populates exist:
// constants, variables, and functions.
type ObjKind int

const (
	Con ObjKind = iota
	Var
	Fun
)

func (k ObjKind) String() string {
	switch k {
	case Con:
		return "const"
	case Var:
		return "var"
	case Fun:
		return "func"
	}
	return "bad"
}

// Object records the declaration that introduced a name at file scope. Decl
// is the declaring node: *FuncDecl for Fun, *ValueSpec for Con/Var, and
// *TypeSpec for a type name (which the parser declares as Var). The
// Ident <-> Object graph is intentionally cyclic (spec §9): ident.Obj points
// here, and obj.Decl (transitively) contains that same Ident.
type Object struct {
	Kind ObjKind
	Name string
	Decl interface{}
}

// NewObj creates an Object of the given kind and name with no declaration
// attached yet; callers set Decl once the declaring node exists.
func NewObj(kind ObjKind, name string) *Object {
	return &Object{Kind: kind, Name: name}
}

// Scope maps file-scope names to the Object that declares them (spec §3,
// §4.3). This front-end only ever populates one scope per File — there is no
// block-level scoping, since name resolution beyond the file-scope object
// table is a Non-goal (spec §1).
type Scope struct {
	Outer   *Scope
	Objects map[string]*Object
}

// NewScope creates an empty Scope nested inside outer (outer may be nil).
func NewScope(outer *Scope) *Scope {
	return &Scope{Outer: outer, Objects: make(map[string]*Object)}
}

// Insert attaches obj under its own name if no object of that name is
// already present, returning the pre-existing object in that case (mirrors
// the teacher-adjacent sentinel/Go parser convention: Insert reports the
// conflict instead of silently overwriting).
func (s *Scope) Insert(obj *Object) (alt *Object) {
	if alt = s.Objects[obj.Name]; alt == nil {
		s.Objects[obj.Name] = obj
	}
	return
}

// Lookup returns the object bound to name in this scope, or nil.
func (s *Scope) Lookup(name string) *Object {
	return s.Objects[name]
}
