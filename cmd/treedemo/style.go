package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title, branch, yes, no, fail lipgloss.Style
}

func newStyles(w io.Writer, plain bool) styles {
	r := lipgloss.NewRenderer(w)
	if plain {
		s := r.NewStyle()
		return styles{s, s, s, s, s}
	}
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#4589ff")),
		branch: r.NewStyle().Foreground(lipgloss.Color("#8d8d8d")),
		yes:    r.NewStyle().Foreground(lipgloss.Color("#3ddbd9")),
		no:     r.NewStyle().Foreground(lipgloss.Color("#ff832b")),
		fail:   r.NewStyle().Foreground(lipgloss.Color("#da1e28")),
	}
}

func (s styles) bool(b bool) string {
	if b {
		return s.yes.Render("true")
	}
	return s.no.Render("false")
}

// tree colours the branch glyphs of a rendered tree.
func (s styles) tree(rendering string) string {
	return strings.NewReplacer(
		"├─", s.branch.Render("├─"),
		"└─", s.branch.Render("└─"),
		"│", s.branch.Render("│"),
	).Replace(rendering)
}
