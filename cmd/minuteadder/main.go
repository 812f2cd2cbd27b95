package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/minuteadder/internal/clock"
	"github.com/javiermolinar/minuteadder/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := ui.NewApp(clock.TimeAdder{})
	defer func() { _ = app.Close() }()
	return app.Execute()
}
