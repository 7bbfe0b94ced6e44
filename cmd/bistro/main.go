// Package main provides the bistro CLI.
package main

import "github.com/mesh-intelligence/bistro/internal/cli"

func main() {
	cli.Execute()
}
