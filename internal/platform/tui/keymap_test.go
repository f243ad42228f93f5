package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapMap(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Intent
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.IntentUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.IntentDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.IntentLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.IntentRight},
		{"w", runeKey('w'), core.IntentUp},
		{"W", runeKey('W'), core.IntentUp},
		{"s", runeKey('s'), core.IntentDown},
		{"S", runeKey('S'), core.IntentDown},
		{"a", runeKey('a'), core.IntentLeft},
		{"A", runeKey('A'), core.IntentLeft},
		{"d", runeKey('d'), core.IntentRight},
		{"D", runeKey('D'), core.IntentRight},
		{"q", runeKey('q'), core.IntentQuit},
		{"Q", runeKey('Q'), core.IntentQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.IntentQuit},
		{"r", runeKey('r'), core.IntentRestart},
		{"R", runeKey('R'), core.IntentRestart},
		{"unbound letter", runeKey('x'), core.IntentNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.IntentNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Map(tc.msg); got != tc.expected {
				t.Errorf("Map(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHints(t *testing.T) {
	hints := DefaultKeyMap().Hints()

	if !strings.Contains(hints, "q quit") {
		t.Errorf("Hints() = %q, expected quit hint", hints)
	}
	if !strings.Contains(hints, "arrows/wasd move") {
		t.Errorf("Hints() = %q, expected move hint", hints)
	}
	if strings.Contains(hints, "\x1b[") {
		t.Errorf("Hints() = %q must be plain text", hints)
	}
}
