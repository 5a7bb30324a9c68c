package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"lifegrid/internal/sim"
)

// StatusLines formats the controller status for the HUD.
func StatusLines(st sim.Status) []string {
	lines := []string{
		fmt.Sprintf("gen %d  pop %d", st.Generation, st.Population),
		strings.ToUpper(st.Mode.String()),
	}
	if st.LastSave != "" {
		lines = append(lines, "saved "+filepath.Base(st.LastSave))
	}
	return lines
}

// HelpLine lists the key bindings.
const HelpLine = "space pause  n step  s save  l load  c clear  g grid  h hud  esc quit"
