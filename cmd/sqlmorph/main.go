package main

import "github.com/coregx/sqlmorph/internal/cli"

func main() {
	cli.Execute()
}
