package ui

import (
	"fmt"
	"image/color"
)

// FlagCount is one row of the HUD's flag table.
type FlagCount struct {
	Flag  int
	Cells int
	Color color.RGBA
}

// Status is the state the HUD panel displays.
type Status struct {
	Walk    string
	Seed    int64
	Running bool
	Message string
	Counts  []FlagCount
}

// Lines returns the panel text, one entry per line. Flag rows come last, in
// the order of Counts.
func (s Status) Lines() []string {
	state := "idle"
	if s.Running {
		state = "crawling"
	}
	lines := []string{
		"walk  " + s.Walk,
		fmt.Sprintf("seed  %d", s.Seed),
		"state " + state,
	}
	if s.Message != "" {
		lines = append(lines, s.Message)
	}
	if len(s.Counts) == 0 {
		return append(lines, "no flags")
	}
	for _, c := range s.Counts {
		lines = append(lines, fmt.Sprintf("flag %d: %d", c.Flag, c.Cells))
	}
	return lines
}
