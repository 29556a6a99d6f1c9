// Package main provides the tinynn CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("tinynn %s\n", version)
		return
	}

	fmt.Println("tinynn - gradient-based optimizers and LR schedules for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("See examples/regression for a training demo.")
}
