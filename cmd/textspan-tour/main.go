// Package main is a guided tour of the textspan library: owned text
// buffers, non-owning views, optional values, and tagged message variants.
// Output is illustrative only.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/dshills/textspan/internal/message"
	"github.com/dshills/textspan/internal/optional"
	"github.com/dshills/textspan/internal/text"
)

func main() {
	os.Exit(run())
}

func run() int {
	numericBounds()

	if err := ownedVersusView(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	optionalAccess()
	matching()
	selectLonger()

	return 0
}

// numericBounds prints the extremes of the fixed-width integer types.
func numericBounds() {
	fmt.Println("different max values of int32 and uint32")
	fmt.Println("max value of int32 is", math.MaxInt32)
	fmt.Println("max value of uint32 is", uint32(math.MaxUint32))
	fmt.Println()
}

// ownedVersusView builds an owned buffer by appending, then takes a
// read-only view into it.
func ownedVersusView() error {
	fmt.Println("difference between owned text and a view")

	owned := text.FromString("Hello ")
	owned.Append("world")
	owned.Append("!")

	fmt.Println(owned)

	if owned.String() != "Hello world!" {
		return fmt.Errorf("owned text is %q, want %q", owned.String(), "Hello world!")
	}

	// A view borrows part of the buffer without copying it.
	slice, err := owned.Slice(2, 5)
	if err != nil {
		return err
	}
	fmt.Println("sliced view:", slice)

	// Appending moves the buffer on; the old view is now stale.
	owned.Append(" again")
	fmt.Println("view still valid after append?", slice.Valid())
	fmt.Println()

	return nil
}

// optionalAccess indexes a fixed list through optional.At, where absence
// replaces panicking on out-of-range access.
func optionalAccess() {
	fruits := [5]string{"apple", "banana", "cherry", "date", "elderberry"}

	fmt.Println("the first fruit is", fruits[0])

	report := func(i int) {
		if fruit, ok := optional.At(fruits[:], i).Get(); ok {
			fmt.Printf("the fruit at index %d is %s\n", i, fruit)
		} else {
			fmt.Printf("no fruit at index %d\n", i)
		}
	}

	report(1)
	report(20)

	fmt.Println("all fruits:", fruits)
	fmt.Println()
}

// matching dispatches each variant of the closed message set.
func matching() {
	a, b := int8(2), byte('b')
	fmt.Printf("a %d, b %c\n", a, b)

	number := int8(3)
	switch number {
	case 1:
		fmt.Println("1st matched: value is", number)
	case 2, 3:
		fmt.Println("either 2 or 3")
	default:
		fmt.Println("something else")
	}

	describe := func(m message.Message) {
		message.MatchVoid(m,
			func() { fmt.Println("Quit") },
			func(x, y int32) { fmt.Printf("Move to %d %d\n", x, y) },
		)
	}

	describe(message.Move{X: 2, Y: 3})
	describe(message.Quit{})

	// Single-pattern checks on optional values.
	favoriteColor := optional.Some("blue")
	if color, ok := favoriteColor.Get(); ok && color == "blue" {
		fmt.Println("your favorite color is blue")
	}

	someValue := optional.Some(int8(43))
	if x, ok := someValue.Get(); ok {
		fmt.Println("unpacked value is", x)
	}
	fmt.Println()
}

// selectLonger compares borrowed views, including across distinct owner
// scopes that share an outer lifetime.
func selectLonger() {
	// Same scope, literal-backed views.
	result := text.SelectLonger(text.ViewOf("anil"), text.ViewOf("garima"))
	fmt.Println("longer name:", result)

	// Distinct inner scopes: the result stays usable while both owners live.
	firstName := text.FromString("anil")
	var result2 text.View
	{
		secondName := text.FromString("anilc")
		result2 = text.SelectLonger(firstName.View(), secondName.View())
	}
	fmt.Println("longer name:", result2)

	// Byte length and perceived length disagree for non-ASCII text.
	v := text.ViewOf("café")
	fmt.Printf("%s: %d bytes, %d elements\n", v, v.Len(), v.Elements())
}
