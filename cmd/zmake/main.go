package main

import (
	"github.com/matthewzu/simple-build-framework/pkg/cli"
)

func main() {
	cli.Execute()
}
