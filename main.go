// main is the entry point for the dashviz CLI.
package main

import (
	"github.com/huangsam/dashviz/cmd"
	"github.com/huangsam/dashviz/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run dashviz", err)
	}
}
