package td_test

import (
	"fmt"

	"github.com/katalvlaran/tdlearn/estimator"
	"github.com/katalvlaran/tdlearn/td"
)

// ExampleTD_Update runs a single TD(0) step on two one-hot features.
func ExampleTD_Update() {
	l, err := td.New(2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	delta, err := l.Update(
		estimator.Transition{X: []float64{1, 0}, Reward: 1, XNext: []float64{0, 1}},
		td.Params{Alpha: 0.1, Gamma: 0.9, GammaNext: 0.9, Lambda: 0},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("delta=%.1f e=%v w=%.1f\n", delta, l.Trace(), l.Weights())
	// Output:
	// delta=1.0 e=[1 0] w=[0.1 0.0]
}
