// Command treedemo runs a scripted sequence of operations on each tree variant and prints
// the trees as they change.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
