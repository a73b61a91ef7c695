package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

// Progress renders a single refreshing line from a running total. Steps are
// fed through a channel so the writer never waits on terminal output.
type Progress struct {
	steps chan int64
	done  chan struct{}
	once  sync.Once
	bar   *progressbar.ProgressBar
}

func Stdout() io.Writer {
	return ansi.NewAnsiStdout()
}

func NewProgressCount(w io.Writer, name string, description string, total int64) *Progress {
	bar := progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(80),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("inodes"),
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan]%s[reset] %s", name, description)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "▌",
			SaucerHead:    "▌",
			SaucerPadding: "░",
			BarStart:      "╢",
			BarEnd:        "╟",
		}))

	p := &Progress{
		steps: make(chan int64, 1024),
		done:  make(chan struct{}),
		bar:   bar,
	}

	go func() {
		for step := range p.steps {
			p.bar.Add64(step)
		}
		close(p.done)
	}()
	return p
}

func (p *Progress) Add(step int64) {
	p.steps <- step
}

// Finish drains pending steps, completes the bar and prints message on its
// own line.
func (p *Progress) Finish(w io.Writer, message string) {
	p.once.Do(func() {
		close(p.steps)
		<-p.done
		p.bar.Finish()
		p.bar.Close()
		if message != "" {
			fmt.Fprintln(w, message)
		}
	})
}

// Abort stops rendering without completing the bar.
func (p *Progress) Abort(w io.Writer) {
	p.once.Do(func() {
		close(p.steps)
		<-p.done
		p.bar.Exit()
		fmt.Fprintln(w)
	})
}
