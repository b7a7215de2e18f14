// Command lootsort sorts and classifies loot fixtures from the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lootsort:", err)
		os.Exit(1)
	}
}
