package main

import (
	"github.com/deploywatch/deploywatch/cmd/deploywatch/cli"
)

func main() {
	cli.InitAndExecute()
}
