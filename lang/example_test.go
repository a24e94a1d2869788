package lang_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardnew/cykscope/lang"
)

func ExampleAnalyze() {
	ctx := context.Background()

	for _, input := range []string{"(lambda (x) (x y))", "(x"} {
		res, err := lang.Analyze(ctx, input)
		if err != nil {
			fmt.Println(err)

			continue
		}

		fmt.Println(res.Accepted, res.Free)
	}
	// Output:
	// true [y]
	// false []
}

func ExampleCases() {
	input := "3\n(lambda (y) (lambda (z) (x (y z))))\nlambda(x)x\n((lambda(x)x)(x y))\n"

	for c, err := range lang.Cases(context.Background(), strings.NewReader(input)) {
		if err != nil {
			fmt.Println(err)

			return
		}

		res, err := lang.Analyze(context.Background(), c.Input)
		if err != nil {
			fmt.Println(err)

			return
		}

		if res.Accepted {
			fmt.Println(c.Line(res.Free))
		}
	}
	// Output:
	// Case #1: x
	// Case #3: x y
}
