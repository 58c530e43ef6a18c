package cmd

import (
	"fmt"

	"github.com/go-drift/scrollkit/cmd/scrollreplay/internal/trace"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check trace files without replaying them",
		Long: `Parse and validate one or more trace files.

Checks the format version, viewport, sticky sections and event ordering.
Files ending in .toml are read as TOML, everything else as YAML.`,
		Usage: "scrollreplay validate <trace>...",
		Run:   runValidate,
	})
}

func runValidate(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("validate requires at least one trace file")
	}
	failed := 0
	for _, path := range args {
		tr, err := trace.Load(path)
		if err != nil {
			fmt.Fprintf(stdout, "%s %v\n", styles.Error.Render("FAIL"), err)
			failed++
			continue
		}
		fmt.Fprintf(stdout, "%s %s (format %s, %d events, %s)\n",
			styles.OK.Render("ok  "), path, tr.Format, len(tr.Events), tr.Duration())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d traces failed validation", failed, len(args))
	}
	return nil
}
