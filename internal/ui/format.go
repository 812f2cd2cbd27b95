package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/javiermolinar/minuteadder/internal/config"
)

// FormatOffset renders a signed minute offset as "+ N minutes" or "- N minutes".
func FormatOffset(minutes int) string {
	sign := "+"
	n := minutes
	if minutes < 0 {
		sign = "-"
		n = -minutes
	}
	return fmt.Sprintf("%s %d minutes", sign, n)
}

// SampleLabel renders the left-hand side of a sample line, e.g. "1:00 AM - 60 minutes".
func SampleLabel(s config.Sample) string {
	return s.Time + " " + FormatOffset(s.Minutes)
}

// labelWidth returns the padding width for sample labels, capped to half the terminal.
func labelWidth(samples []config.Sample, maxWidth int) int {
	width := 0
	for _, s := range samples {
		width = max(width, len(SampleLabel(s)))
	}
	return min(width, max(maxWidth/2, 1))
}

// addSample runs one sample through the adder and logs it.
func (a *App) addSample(s config.Sample) (string, error) {
	start := time.Now()
	result, err := a.adder.AddMinutes(s.Time, s.Minutes)
	logAdd(a.log, s.Time, s.Minutes, result, err, time.Since(start))
	return result, err
}

// printSamples prints one aligned "label = result" line per sample.
func (a *App) printSamples(w io.Writer, samples []config.Sample) error {
	width := labelWidth(samples, termWidth())
	for _, s := range samples {
		result, err := a.addSample(s)
		if err != nil {
			return fmt.Errorf("sample %q: %w", SampleLabel(s), err)
		}
		label := SampleLabel(s)
		pad := strings.Repeat(" ", max(width-len(label), 0))
		fmt.Fprintf(w, "%s%s = %s\n", label, pad, formatResult(result))
	}
	return nil
}
