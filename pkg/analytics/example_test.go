package analytics_test

import (
	"fmt"

	"github.com/matzehuels/arcraiders/pkg/analytics"
)

func ExampleCalculate() {
	s := analytics.Calculate([]float64{10, 20, 25})
	fmt.Println(s.Count, s.Average, s.Min, s.Max, s.Sum)
	// Output: 3 18.33 10 25 55
}
