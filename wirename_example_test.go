package apicula_test

import (
	"fmt"

	"github.com/chiplet/apicula"
)

func ExampleGlobalWireName() {
	// inter-tile, local and chip-wide wires
	for _, w := range []string{"E211", "F3", "VCC"} {
		fmt.Println(apicula.GlobalWireName(5, 5, w))
	}
	// Output:
	// R5C4_E21
	// R5C5_F3
	// VCC
}
