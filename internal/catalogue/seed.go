package catalogue

import (
	_ "embed"
	"fmt"
)

//go:embed seed.yaml
var seedYAML []byte

// def is the built-in catalogue, parsed once at init.
var def *Catalogue

func init() {
	c, err := Parse(seedYAML)
	if err != nil {
		panic(fmt.Sprintf("catalogue: invalid seed: %v", err))
	}
	def = c
}

// Default returns the built-in course catalogue.
func Default() *Catalogue {
	return def
}
