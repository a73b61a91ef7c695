package generate

import (
	"os"

	"github.com/PlakarLabs/defendertest/context"
	"github.com/PlakarLabs/defendertest/events"
	"github.com/PlakarLabs/defendertest/plan"
	"github.com/PlakarLabs/defendertest/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	checkMark = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).SetString("✓")
	crossMark = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).SetString("✘")
)

// eventsProcessorStdio renders generation events. With interactive set a
// progress bar tracks created inodes, otherwise one line is printed per
// phase and per completed level. It returns once the receiver is closed.
func eventsProcessorStdio(ctx *context.Context, target plan.Target, quiet bool, interactive bool) chan struct{} {
	logger := ctx.GetLogger()
	listener := ctx.Events().Listen()
	done := make(chan struct{})

	go func() {
		defer close(done)

		var bar *progress.Progress
		for event := range listener {
			switch event := event.(type) {
			case events.Phase:
				if event.Name == "building" && interactive {
					bar = progress.NewProgressCount(progress.Stdout(), "defendertest", "creating inodes", progressTotal(target))
				} else if !quiet && !interactive {
					logger.Stdout("%s %s", checkMark, event.Name)
				}
			case events.PoolGenerated:
				if !quiet {
					logger.Stdout("%s generated %s names in %s", checkMark,
						humanize.Comma(int64(event.Size)), event.Duration)
				}
			case events.FileCreated, events.FileExists, events.DirectoryCreated, events.DirectoryExists:
				if bar != nil {
					bar.Add(1)
				}
			case events.LevelDone:
				if !quiet && !interactive {
					logger.Stdout("%s level %d/%d: %s inodes", checkMark, event.Level, target.Levels(),
						humanize.Comma(int64(event.Inodes)))
				}
				logger.Info("%s", event.Pathname)
			case events.Error:
				if bar != nil {
					bar.Abort(os.Stdout)
					bar = nil
				}
				logger.Info("%s %s: %s", crossMark, event.Pathname, event.Message)
			case events.Done:
				if bar != nil {
					bar.Finish(os.Stdout, "Process complete")
					bar = nil
				}
			}
		}

		if bar != nil {
			bar.Abort(os.Stdout)
		}
	}()

	return done
}

// progressTotal is the number of entries the bar advances through: every
// file of the plan plus one per directory level.
func progressTotal(target plan.Target) int64 {
	return int64(target.Files() + target.Levels())
}
