package library

// Kind classifies a describable object discovered in a library namespace.
type Kind int

const (
	KindFunction Kind = iota
	KindClass
	KindMethod
	KindClassMethod
	KindStaticMethod
)

// String returns the wire name for the kind.
func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindClass:
		return "class"
	case KindMethod:
		return "method"
	case KindClassMethod:
		return "classmethod"
	case KindStaticMethod:
		return "staticmethod"
	}
	return "unknown"
}

// Param is one parameter of a callable, as literal source text. Default
// values are never evaluated: HasDefault with an empty Default means the
// source representation could not be captured.
type Param struct {
	Name       string
	Type       string // annotation text, "" if unannotated
	HasDefault bool
	Default    string // literal default text, "" if unrepresentable
	Star       string // "", "*" or "**" for variadic markers
}

// Signature is the textual projection of a callable's parameters and
// return annotation.
type Signature struct {
	Params []Param
	Return string // "" if unannotated
}

// Object is the minimal capability every describable library member
// provides. Underlying returns a comparable identity for the described
// object so that the same object reached through two paths can be
// recognized.
type Object interface {
	Name() string
	Kind() Kind
	Doc() string
	Underlying() any
}

// Function is a callable object whose signature can be projected.
// Signature may fail for objects the underlying library cannot render.
type Function interface {
	Object
	Signature() (Signature, error)
}

// Class is an object that owns methods and declares base classes. Base
// names are informational only and are not required to resolve.
type Class interface {
	Object
	Bases() []string
	Methods() ([]Function, error)
}

// Module is one node of a library's module namespace.
type Module interface {
	Path() string
	Underlying() any
	Submodules() ([]Module, error)
	Objects() ([]Object, error)
}
