package bramble

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a run script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// runScript is the top-level JSON structure for a run script.
type runScript struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected pointer events and screenshots across frames for
// automated visual checks. Attach one to a Game via SetScript.
//
// Supported actions: "move" (x, y), "click" (x, y), "sweep" (fromX, fromY,
// toX, toY, frames), "wait" (frames), and "screenshot" (label).
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON run script.
func LoadScript(jsonData []byte) (*Script, error) {
	var script runScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse run script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse run script: no steps")
	}
	return &Script{steps: script.Steps}, nil
}

// SetScript attaches a Script to the game. The script's step method is
// called from Game.Update each frame, after injected input is processed.
func (g *Game) SetScript(script *Script) {
	g.script = script
}

// ScriptDone reports whether the attached script has executed every step.
// Always false when no script is attached.
func (g *Game) ScriptDone() bool {
	return g.script != nil && g.script.done
}

// Done reports whether all steps in the script have been executed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame. Called from Game.Update.
func (s *Script) step(g *Game) {
	if s.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(g.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "screenshot":
		g.Screenshot(st.Label)
	case "move":
		g.InjectMove(st.X, st.Y)
	case "click":
		g.InjectClick(st.X, st.Y)
	case "sweep":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		g.InjectSweep(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(g.injectQueue) == 0 {
		s.done = true
	}
}
