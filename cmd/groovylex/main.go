package main

import (
	"os"

	"go.groovylex.dev/cmd/groovylex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
