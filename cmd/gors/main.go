// Command gors is the CLI surface for the Go source front-end: it tokenizes,
// parses, lowers, and optionally serves a single source file, the same way
// the teacher's own flat main.go drove its language server.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
