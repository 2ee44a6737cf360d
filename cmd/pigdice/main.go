package main

import (
	"github.com/mcoot/pigdice-go/internal/cli"
)

func main() {
	cli.Execute()
}
