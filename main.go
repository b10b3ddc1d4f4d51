// Package main is the entry point for the glyphs CLI.
package main

import "glyphs.dev/pkg/glyphs/cmd"

func main() {
	cmd.Execute()
}
