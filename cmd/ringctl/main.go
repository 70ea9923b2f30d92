package main

import (
	"github.com/treeverse/ringview/cmd/ringctl/cmd"
)

func main() {
	cmd.Execute()
}
