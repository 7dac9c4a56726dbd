// Package progress renders analysis progress on stderr, keeping stdout
// clean for report output.
package progress

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Tracker wraps a progress bar for file processing. A nil-bar tracker is
// silent, for quiet mode and non-interactive runs.
type Tracker struct {
	bar   *progressbar.ProgressBar
	label string
}

// NewSilent returns a tracker that renders nothing.
func NewSilent() *Tracker {
	return &Tracker{}
}

// NewSpinner creates a spinner for operations with unknown total count.
func NewSpinner(label string) *Tracker {
	return &Tracker{
		label: label,
		bar: progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(20),
			progressbar.OptionSetDescription(label),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionClearOnFinish(),
		),
	}
}

// NewTracker creates a progress bar with the given label and total count.
func NewTracker(label string, total int) *Tracker {
	return &Tracker{
		label: label,
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(30),
			progressbar.OptionSetDescription(label),
			progressbar.OptionUseANSICodes(true),
			progressbar.OptionSetElapsedTime(false),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		),
	}
}

// Tick increments the progress by 1. Safe for concurrent use.
func (t *Tracker) Tick() {
	if t.bar != nil {
		t.bar.Add(1)
	}
}

func (t *Tracker) finish() {
	t.bar.Finish()
	t.bar.Clear()
}

// FinishSuccess clears the bar completely.
func (t *Tracker) FinishSuccess() {
	if t.bar == nil {
		return
	}
	t.finish()
}

// FinishError clears the bar and prints an error message to stderr.
func (t *Tracker) FinishError(err error) {
	if t.bar == nil {
		return
	}
	t.finish()
	fmt.Fprintf(os.Stderr, "  %s error: %v\n", t.label, err)
}
