package main

import (
	"os"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
