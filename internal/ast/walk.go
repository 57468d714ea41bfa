package ast

// Visitor's Visit method is invoked for each node encountered by Walk. If
// the result is not nil, Walk visits each of the children of that node with
// the returned Visitor.
type Visitor interface {
	Visit(node Node) Visitor
}

// Walk traverses an AST in depth-first order, starting with node. It
// mirrors go/ast.Walk's child order for every node type this package
// defines.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	v = v.Visit(node)
	if v == nil {
		return
	}

	switch n := node.(type) {
	case *Comment, *Ident, *BasicLit:
		// leaves

	case *CommentGroup:
		for _, c := range n.List {
			Walk(v, c)
		}

	case *Field:
		if n.Doc != nil {
			Walk(v, n.Doc)
		}
		for _, name := range n.Names {
			Walk(v, name)
		}
		if n.Type != nil {
			Walk(v, n.Type)
		}
		if n.Tag != nil {
			Walk(v, n.Tag)
		}
		if n.Comment != nil {
			Walk(v, n.Comment)
		}

	case *FieldList:
		for _, f := range n.List {
			Walk(v, f)
		}

	case *ParenExpr:
		Walk(v, n.X)
	case *UnaryExpr:
		Walk(v, n.X)
	case *BinaryExpr:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *SelectorExpr:
		Walk(v, n.X)
		Walk(v, n.Sel)
	case *IndexExpr:
		Walk(v, n.X)
		Walk(v, n.Index)
	case *SliceExpr:
		Walk(v, n.X)
		if n.Low != nil {
			Walk(v, n.Low)
		}
		if n.High != nil {
			Walk(v, n.High)
		}
		if n.Max != nil {
			Walk(v, n.Max)
		}
	case *TypeAssertExpr:
		Walk(v, n.X)
		if n.Type != nil {
			Walk(v, n.Type)
		}
	case *CallExpr:
		Walk(v, n.Fun)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *CompositeLit:
		if n.Type != nil {
			Walk(v, n.Type)
		}
		for _, e := range n.Elts {
			Walk(v, e)
		}
	case *FuncLit:
		Walk(v, n.Type)
		Walk(v, n.Body)
	case *KeyValueExpr:
		Walk(v, n.Key)
		Walk(v, n.Value)
	case *Ellipsis:
		if n.Elt != nil {
			Walk(v, n.Elt)
		}
	case *StarExpr:
		Walk(v, n.X)
	case *ChanType:
		Walk(v, n.Value)
	case *FuncType:
		if n.Params != nil {
			Walk(v, n.Params)
		}
		if n.Results != nil {
			Walk(v, n.Results)
		}
	case *InterfaceType:
		Walk(v, n.Methods)
	case *MapType:
		Walk(v, n.Key)
		Walk(v, n.Value)
	case *StructType:
		Walk(v, n.Fields)
	case *ArrayType:
		if n.Len != nil {
			Walk(v, n.Len)
		}
		Walk(v, n.Elt)

	case *AssignStmt:
		for _, x := range n.Lhs {
			Walk(v, x)
		}
		for _, x := range n.Rhs {
			Walk(v, x)
		}
	case *BlockStmt:
		for _, s := range n.List {
			Walk(v, s)
		}
	case *DeclStmt:
		Walk(v, n.Decl)
	case *EmptyStmt:
		// leaf
	case *ExprStmt:
		Walk(v, n.X)
	case *ForStmt:
		if n.Init != nil {
			Walk(v, n.Init)
		}
		if n.Cond != nil {
			Walk(v, n.Cond)
		}
		if n.Post != nil {
			Walk(v, n.Post)
		}
		Walk(v, n.Body)
	case *RangeStmt:
		if n.Key != nil {
			Walk(v, n.Key)
		}
		if n.Value != nil {
			Walk(v, n.Value)
		}
		Walk(v, n.X)
		Walk(v, n.Body)
	case *GoStmt:
		Walk(v, n.Call)
	case *DeferStmt:
		Walk(v, n.Call)
	case *IfStmt:
		if n.Init != nil {
			Walk(v, n.Init)
		}
		Walk(v, n.Cond)
		Walk(v, n.Body)
		if n.Else != nil {
			Walk(v, n.Else)
		}
	case *IncDecStmt:
		Walk(v, n.X)
	case *ReturnStmt:
		for _, r := range n.Results {
			Walk(v, r)
		}
	case *SendStmt:
		Walk(v, n.Chan)
		Walk(v, n.Value)

	case *ImportSpec:
		if n.Doc != nil {
			Walk(v, n.Doc)
		}
		if n.Name != nil {
			Walk(v, n.Name)
		}
		Walk(v, n.Path)
		if n.Comment != nil {
			Walk(v, n.Comment)
		}
	case *ValueSpec:
		if n.Doc != nil {
			Walk(v, n.Doc)
		}
		for _, name := range n.Names {
			Walk(v, name)
		}
		if n.Type != nil {
			Walk(v, n.Type)
		}
		for _, val := range n.Values {
			Walk(v, val)
		}
		if n.Comment != nil {
			Walk(v, n.Comment)
		}
	case *TypeSpec:
		if n.Doc != nil {
			Walk(v, n.Doc)
		}
		Walk(v, n.Name)
		Walk(v, n.Type)
		if n.Comment != nil {
			Walk(v, n.Comment)
		}

	case *FuncDecl:
		if n.Doc != nil {
			Walk(v, n.Doc)
		}
		if n.Recv != nil {
			Walk(v, n.Recv)
		}
		Walk(v, n.Name)
		Walk(v, n.Type)
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *GenDecl:
		if n.Doc != nil {
			Walk(v, n.Doc)
		}
		for _, s := range n.Specs {
			Walk(v, s)
		}

	case *File:
		if n.Doc != nil {
			Walk(v, n.Doc)
		}
		Walk(v, n.Name)
		for _, d := range n.Decls {
			Walk(v, d)
		}

	default:
		panic("ast.Walk: unexpected node type")
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses node depth-first, calling f for each node; f controls
// descent into that node's children the same way it does in go/ast.Inspect.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
