package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestStrings(t *testing.T) {
	require.Equal(t, []string{"1.5", "2"}, Strings([]float64{1.5, 2}))
	require.Equal(t, []string{"true", "false"}, Strings([]bool{true, false}))
	require.Empty(t, Strings[int](nil))
}

func TestColumns(t *testing.T) {
	out := Columns(
		[]string{"mass_kg", "habitable"},
		[][]string{{"5.976e+24", "6.421e+23"}, {"true", "false"}},
	)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "mass_kg")
	require.Contains(t, lines[0], "habitable")
	require.Contains(t, lines[1], "5.976e+24")
	require.Contains(t, lines[1], "true")
	require.Contains(t, lines[2], "false")

	// The second column starts at the same offset on every line.
	idx := strings.Index(lines[1], "true")
	require.Equal(t, idx, strings.Index(lines[2], "false"))
	require.Positive(t, lipgloss.Width(lines[0]))
}

func TestColumns_Ragged(t *testing.T) {
	out := Columns([]string{"a", "b"}, [][]string{{"1", "2", "3"}, {"x"}})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	require.Contains(t, lines[1], "x")
	require.NotContains(t, lines[3], "x")
}
