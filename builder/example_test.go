package builder_test

import (
	"fmt"

	"github.com/katalvlaran/incarcnet/builder"
	"github.com/katalvlaran/incarcnet/record"
)

// ExampleRateDifference links A and B (gap 20) and leaves C isolated.
func ExampleRateDifference() {
	g, err := builder.RateDifference([]record.Record{
		{Jurisdiction: "A", Year: 2001, IncarcerationRate: 100, CrimeRate: 200},
		{Jurisdiction: "B", Year: 2001, IncarcerationRate: 120, CrimeRate: 210},
		{Jurisdiction: "C", Year: 2001, IncarcerationRate: 300, CrimeRate: 50},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s -> %s (%.0f)\n", g.Label(e.From), g.Label(e.To), e.Weight)
	}

	// Output:
	// A -> B (20)
}
