// main is the entry point for the scorecast CLI.
package main

import (
	"github.com/scorecast/scorecast/cmd"
	"github.com/scorecast/scorecast/internal/contract"
)

func main() {
	defer func() {
		if err := cmd.StopProfiling(); err != nil {
			contract.LogWarn("Could not stop profiling", err)
		}
	}()

	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
