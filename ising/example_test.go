package ising_test

import (
	"fmt"

	"github.com/katalvlaran/isingraph/builder"
	"github.com/katalvlaran/isingraph/ising"
	"github.com/katalvlaran/isingraph/spin"
)

// ExampleHamiltonian_ComputeAverageValues evaluates the antiferromagnetic
// 6-site ring exactly at T=1.
func ExampleHamiltonian_ComputeAverageValues() {
	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithConstantWeight(2)}, builder.Cycle(6))
	h, _ := ising.New(g)

	avg, _ := h.ComputeAverageValues(1)
	fmt.Printf("E=%.6f HC=%.6f MS=%.6f\n", avg.Energy, avg.HeatCapacity, avg.Susceptibility)

	ground, _ := spin.New(6)
	ground.SetInteger(avg.GroundState)
	fmt.Println("ground state:", ground, "E0 =", avg.GroundEnergy)

	// Output:
	// E=-11.959919 HC=0.319255 MS=0.012030
	// ground state: 010101 E0 = -12
}
