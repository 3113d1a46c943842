// Package core defines the configuration object model: object types, loose and
// constructed objects, parameter signatures, construction arguments,
// constructions, layouts and configurations.
//
// This file declares ObjectType and the sentinel errors of the package.
//
// Errors:
//
//	ErrInvalidParameter     - malformed parameter node (unknown type, count < 1).
//	ErrInvalidConstruction  - malformed construction (bad name, empty signature or outputs).
//	ErrArgumentMismatch     - arguments do not mirror a construction's signature.
//	ErrInvalidObject        - nil object or object of an unknown type.
//	ErrDuplicateObject      - configuration would contain the same object id twice.
//	ErrObjectOutOfScope     - argument references an object not yet in the configuration.
//	ErrLayoutMismatch       - loose objects do not match the declared layout.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for core model operations.
var (
	// ErrInvalidParameter indicates a parameter node with an unknown object type
	// or a set node with a non-positive count.
	ErrInvalidParameter = errors.New("core: invalid parameter")

	// ErrInvalidConstruction indicates a construction with an unusable name,
	// an empty signature or no output types.
	ErrInvalidConstruction = errors.New("core: invalid construction")

	// ErrArgumentMismatch indicates arguments whose shape or object types
	// do not follow the construction's parameter signature.
	ErrArgumentMismatch = errors.New("core: arguments do not match signature")

	// ErrInvalidObject indicates a nil object or an object of an unknown type.
	ErrInvalidObject = errors.New("core: invalid object")

	// ErrDuplicateObject indicates that a configuration would hold two
	// objects with the same id.
	ErrDuplicateObject = errors.New("core: duplicate object")

	// ErrObjectOutOfScope indicates a constructed object whose arguments
	// reference an object that is not part of the configuration yet.
	ErrObjectOutOfScope = errors.New("core: argument object out of scope")

	// ErrLayoutMismatch indicates loose objects whose count or types
	// contradict the declared layout.
	ErrLayoutMismatch = errors.New("core: loose objects do not match layout")
)

// ObjectType is the geometric kind of a configuration object.
// The set is closed; every switch over it is exhaustive.
type ObjectType int

const (
	Point  ObjectType = iota // Point is a geometric point.
	Line                     // Line is an infinite straight line.
	Circle                   // Circle is a circle.
)

// ObjectTypes lists every ObjectType in declaration order. Enumeration that
// crosses types (arguments generation, caps) follows this order.
var ObjectTypes = []ObjectType{Point, Line, Circle}

// String returns the type name.
func (t ObjectType) String() string {
	switch t {
	case Point:
		return "Point"
	case Line:
		return "Line"
	case Circle:
		return "Circle"
	default:
		return fmt.Sprintf("ObjectType(%d)", int(t))
	}
}

// Valid reports whether t is one of the declared object types.
func (t ObjectType) Valid() bool {
	return t >= Point && t <= Circle
}

// ParseObjectType converts a case-insensitive type name into an ObjectType.
func ParseObjectType(s string) (ObjectType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "point":
		return Point, nil
	case "line":
		return Line, nil
	case "circle":
		return Circle, nil
	default:
		return 0, fmt.Errorf("core: unknown object type %q", s)
	}
}
