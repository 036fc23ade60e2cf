package main

import (
	"github.com/arcadelab/wavearena-go/internal/cli"
)

func main() {
	cli.Execute()
}
