package cmd

import (
	"fmt"

	"github.com/go-drift/scrollkit/cmd/scrollreplay/internal/replay"
	"github.com/go-drift/scrollkit/cmd/scrollreplay/internal/trace"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Replay a trace and print the resulting events",
		Long: `Replay a trace through a scroll view and print every event it produces.

Inputs from the trace are printed dimmed. Callbacks, sticky placement
changes and configuration advisories are printed as they occur, stamped
with the virtual time of the replay.

Flags:
  --quiet   Omit the echoed inputs`,
		Usage: "scrollreplay replay [--quiet] <trace>",
		Run:   runReplay,
	})
}

func runReplay(args []string) error {
	quiet := false
	var path string
	for _, arg := range args {
		switch arg {
		case "--quiet", "-q":
			quiet = true
		default:
			if path != "" {
				return fmt.Errorf("replay takes one trace file, got %q and %q", path, arg)
			}
			path = arg
		}
	}
	if path == "" {
		return fmt.Errorf("replay requires a trace file")
	}

	tr, err := trace.Load(path)
	if err != nil {
		return err
	}
	result, err := replay.Run(tr)
	if err != nil {
		return err
	}

	title := path
	if tr.Name != "" {
		title = tr.Name
	}
	fmt.Fprintln(stdout, styles.Title.Render(title))
	for _, e := range result.Events {
		if quiet && e.Kind == replay.KindInput {
			continue
		}
		fmt.Fprintln(stdout, styles.Event(e))
	}
	fmt.Fprintln(stdout, styles.Dim.Render(fmt.Sprintf(
		"%d events, %d end-reached, %d refresh, %d advisories",
		len(result.Events),
		result.Count(replay.KindEndReached),
		result.Count(replay.KindRefresh),
		result.Count(replay.KindAdvisory),
	)))
	return nil
}
