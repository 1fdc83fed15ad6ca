package main

import (
	"github.com/danielxmed/nobra-calculator-sub006/internal/cli"
	_ "github.com/danielxmed/nobra-calculator-sub006/internal/scores"
)

func main() {
	cli.Execute()
}
