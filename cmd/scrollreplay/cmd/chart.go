package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/scrollkit/cmd/scrollreplay/internal/chart"
	"github.com/go-drift/scrollkit/cmd/scrollreplay/internal/replay"
	"github.com/go-drift/scrollkit/cmd/scrollreplay/internal/trace"
)

func init() {
	RegisterCommand(&Command{
		Name:  "chart",
		Short: "Render a trace timeline to a PNG",
		Long: `Replay a trace and render its timeline to a PNG.

The chart shows the scroll offset, the pull-to-refresh height (shaded while
the refreshing display is pinned) and one lane per sticky section colored
by its position.`,
		Usage: "scrollreplay chart <trace> <out.png>",
		Run:   runChart,
	})
}

func runChart(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("chart requires a trace file and an output path")
	}
	tr, err := trace.Load(args[0])
	if err != nil {
		return err
	}
	result, err := replay.Run(tr)
	if err != nil {
		return err
	}

	cfg := chart.DefaultConfig()
	for _, s := range tr.Sticky {
		cfg.Labels = append(cfg.Labels, s.Name)
	}

	f, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", args[1], err)
	}
	if err := chart.Encode(f, result.Frames, cfg); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s %s (%d frames)\n", styles.OK.Render("wrote"), args[1], len(result.Frames))
	return nil
}
