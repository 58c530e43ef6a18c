// Command scrollreplay replays recorded scroll container sessions.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/scrollkit/cmd/scrollreplay/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
