// Package main is the entry point for the lfichef CLI.
package main

import "lfichef.dev/pkg/lfichef/cmd"

func main() {
	cmd.Execute()
}
