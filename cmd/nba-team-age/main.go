package main

import (
	"github.com/kylewurtz/Analysis-of-Average-Age-of-NBA-Teams/internal/cli"
)

func main() {
	cli.Execute()
}
