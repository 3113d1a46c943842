package core_test

import (
	"fmt"

	"github.com/PatrikBak/GeoGen-sub011/core"
)

// ExampleArguments_Key shows that unordered set arguments share one key.
func ExampleArguments_Key() {
	a, _ := core.NewLooseObject(0, core.Point)
	b, _ := core.NewLooseObject(1, core.Point)

	ab := core.Arguments{core.SetArgument(core.ObjectArgument(a), core.ObjectArgument(b))}
	ba := core.Arguments{core.SetArgument(core.ObjectArgument(b), core.ObjectArgument(a))}

	fmt.Println(ab.Key(), ba.Key(), ab.Equal(ba))
	// Output: ({0,1}) ({0,1}) true
}

// ExampleLayout_Symmetries lists the relabelings of an isosceles triangle.
func ExampleLayout_Symmetries() {
	l := core.IsoscelesTriangle
	fmt.Println(l.Symmetries(l.ObjectTypes()))
	// Output: [[0 1 2] [0 2 1]]
}
