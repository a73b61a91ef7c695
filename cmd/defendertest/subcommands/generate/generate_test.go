package generate

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PlakarLabs/defendertest/config"
	"github.com/PlakarLabs/defendertest/context"
	"github.com/PlakarLabs/defendertest/events"
	"github.com/PlakarLabs/defendertest/generator"
	"github.com/PlakarLabs/defendertest/logging"
	"github.com/PlakarLabs/defendertest/manifest"
	"github.com/PlakarLabs/defendertest/plan"
)

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	manifestPath := filepath.Join(t.TempDir(), "run.manifest")

	ctx := context.NewContext()
	defer ctx.Close()
	ctx.SetHostname("scanner-01")
	ctx.SetNumCPU(4)

	status := cmd_generate(ctx, config.Default(), []string{
		"-path", root, "-total-inodes", "12", "-depth", "3", "-seed", "8",
		"-manifest", manifestPath, "-quiet",
	})
	if status != 0 {
		t.Fatalf("expected status 0, got %d", status)
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		t.Fatalf("manifest.Load: %v", err)
	}
	if m.Hostname != "scanner-01" || m.NumCPU != 4 || m.Seed != 8 || m.Depth != 3 || m.PerDirectory != 4 {
		t.Errorf("unexpected manifest: %+v", m)
	}
	if len(m.Chain) != 3 || m.Inodes() != 12 {
		t.Errorf("expected 3 levels and 12 inodes, got %d and %d", len(m.Chain), m.Inodes())
	}
	if m.WorkDir != filepath.Join(root, generator.WorkDirName) {
		t.Errorf("unexpected working directory %s", m.WorkDir)
	}

	last := m.Chain[len(m.Chain)-1]
	entries, err := os.ReadDir(last)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Errorf("expected 4 files in the deepest level, got %d", len(entries))
	}
}

func TestGeneratePositionalPath(t *testing.T) {
	root := t.TempDir()

	ctx := context.NewContext()
	defer ctx.Close()

	if status := cmd_generate(ctx, config.Default(), []string{"-total-inodes", "2", "-depth", "1", "-quiet", root}); status != 0 {
		t.Fatalf("expected status 0, got %d", status)
	}
	if _, err := os.Stat(filepath.Join(root, generator.WorkDirName)); err != nil {
		t.Errorf("working directory not created: %v", err)
	}
}

func TestGenerateRelativePath(t *testing.T) {
	cwd := t.TempDir()
	if err := os.Mkdir(filepath.Join(cwd, "scan"), 0755); err != nil {
		t.Fatal(err)
	}

	ctx := context.NewContext()
	defer ctx.Close()
	ctx.SetCWD(cwd)

	if status := cmd_generate(ctx, config.Default(), []string{"-path", "scan", "-total-inodes", "2", "-depth", "1", "-quiet"}); status != 0 {
		t.Fatalf("expected status 0, got %d", status)
	}
	if _, err := os.Stat(filepath.Join(cwd, "scan", generator.WorkDirName)); err != nil {
		t.Errorf("relative path not resolved against the working directory: %v", err)
	}
}

func TestGenerateFailures(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"missing path", []string{"-quiet"}},
		{"nonexistent root", []string{"-path", filepath.Join(t.TempDir(), "missing"), "-quiet"}},
		{"zero depth", []string{"-path", t.TempDir(), "-depth", "0", "-quiet"}},
		{"unknown names", []string{"-path", t.TempDir(), "-total-inodes", "2", "-depth", "1", "-names", "sequential", "-quiet"}},
		{"too many parameters", []string{"-quiet", "a", "b"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.NewContext()
			defer ctx.Close()
			if status := cmd_generate(ctx, config.Default(), tc.args); status != 1 {
				t.Errorf("expected status 1, got %d", status)
			}
		})
	}
}

func TestGenerateErrorLogged(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing")

	ctx := context.NewContext()
	defer ctx.Close()
	ctx.SetLogger(logging.NewLogger(&stdout, &stderr))

	if status := cmd_generate(ctx, config.Default(), []string{"-path", missing, "-quiet"}); status != 1 {
		t.Fatalf("expected status 1, got %d", status)
	}
	out := stderr.String()
	if !strings.Contains(out, "generate: invalid root path "+missing) {
		t.Errorf("expected the failure on the logger stderr, got %q", out)
	}
}

func TestProgressTotal(t *testing.T) {
	testCases := []struct {
		total, depth uint64
		expected     int64
	}{
		{100, 5, 105},
		{7, 3, 9},
		{1, 1, 2},
	}

	for _, tc := range testCases {
		target := plan.NewTarget(t.TempDir(), tc.total, tc.depth)
		if got := progressTotal(target); got != tc.expected {
			t.Errorf("total=%d depth=%d: got %d, want %d", tc.total, tc.depth, got, tc.expected)
		}

		// the bar must reach its total exactly over a run
		ctx := context.NewContext()
		listener := ctx.Events().Listen()
		steps := make(chan int64)
		go func() {
			var n int64
			building := false
			for event := range listener {
				switch event := event.(type) {
				case events.Phase:
					building = event.Name == "building"
				case events.FileCreated, events.FileExists, events.DirectoryCreated, events.DirectoryExists:
					if building {
						n++
					}
				}
			}
			steps <- n
		}()

		if _, err := generator.New(ctx, target, generator.Options{Seed: 3}).Run(); err != nil {
			t.Fatalf("Run: %v", err)
		}
		ctx.Close()
		if n := <-steps; n != tc.expected {
			t.Errorf("total=%d depth=%d: %d steps emitted, bar total is %d", tc.total, tc.depth, n, tc.expected)
		}
	}
}

func TestEventsProcessorStdio(t *testing.T) {
	var stdout, stderr bytes.Buffer

	ctx := context.NewContext()
	ctx.SetLogger(logging.NewLogger(&stdout, &stderr))
	target := plan.NewTarget("/tmp", 4, 2)

	done := eventsProcessorStdio(ctx, target, false, false)
	ctx.Events().Send(events.PhaseEvent("building"))
	ctx.Events().Send(events.FileCreatedEvent("/tmp/a/1"))
	ctx.Events().Send(events.LevelDoneEvent(1, "/tmp/a", 2))
	ctx.Events().Send(events.DoneEvent())
	ctx.Close()
	<-done

	out := stdout.String()
	if !strings.Contains(out, "building") || !strings.Contains(out, "level 1/2: 2 inodes") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestEventsProcessorStdioQuiet(t *testing.T) {
	var stdout, stderr bytes.Buffer

	ctx := context.NewContext()
	ctx.SetLogger(logging.NewLogger(&stdout, &stderr))

	done := eventsProcessorStdio(ctx, plan.NewTarget("/tmp", 4, 2), true, false)
	ctx.Events().Send(events.PhaseEvent("building"))
	ctx.Events().Send(events.LevelDoneEvent(1, "/tmp/a", 2))
	ctx.Close()
	<-done

	if stdout.Len() != 0 {
		t.Errorf("expected no output in quiet mode, got %q", stdout.String())
	}
}
