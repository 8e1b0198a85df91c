package Trees

import (
	"errors"
)

// ErrorKind tells apart the ways a tree operation can fail.
type ErrorKind uint8

const (
	NullElement ErrorKind = iota + 1
	NullContainer
	DuplicateValue
	ElementNotFound
	UnsupportedContainerKind
	UnmutableOperation
)

func (k ErrorKind) String() string {
	switch k {
	case NullElement:
		return "element is nil"
	case NullContainer:
		return "container is nil"
	case DuplicateValue:
		return "element already exists"
	case ElementNotFound:
		return "element not found"
	case UnsupportedContainerKind:
		return "container kind is not supported"
	case UnmutableOperation:
		return "container is immutable"
	default:
		return "unknown tree error"
	}
}

// TreeError is returned by every failing tree operation. Op names the operation.
type TreeError struct {
	Kind ErrorKind
	Op   string
}

func (e *TreeError) Error() string {
	if e.Op == "" {
		return "Trees: " + e.Kind.String()
	}
	return "Trees: " + e.Op + ": " + e.Kind.String()
}

// Is matches any TreeError of the same kind, so errors.Is(err, ErrDuplicateValue) works regardless of Op.
func (e *TreeError) Is(target error) bool {
	t, ok := target.(*TreeError)
	return ok && t.Kind == e.Kind
}

var (
	ErrNullElement        = &TreeError{Kind: NullElement}
	ErrNullContainer      = &TreeError{Kind: NullContainer}
	ErrDuplicateValue     = &TreeError{Kind: DuplicateValue}
	ErrElementNotFound    = &TreeError{Kind: ElementNotFound}
	ErrUnsupportedKind    = &TreeError{Kind: UnsupportedContainerKind}
	ErrUnmutableOperation = &TreeError{Kind: UnmutableOperation}
)

// KindOf err, or 0 if err isn't a TreeError.
func KindOf(err error) ErrorKind {
	var e *TreeError
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(k ErrorKind, op string) *TreeError {
	return &TreeError{Kind: k, Op: op}
}

// NewError for packages building on Tree, such as TreeUtils.
func NewError(k ErrorKind, op string) error {
	return newError(k, op)
}
