// Package main is the entry point for the housescope CLI.
package main

import (
	"github.com/huangsam/housescope/cmd"
	"github.com/huangsam/housescope/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Failed to stop profiling", stopErr)
	}
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
