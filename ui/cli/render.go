// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/toeirei/littlelemon/internal/i18n"
	"github.com/toeirei/littlelemon/internal/model"
)

const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("29")  // Little Lemon green
	colorLemon     = lipgloss.Color("220") // Lemon yellow
	colorError     = lipgloss.Color("196")
	colorSuccess   = lipgloss.Color("40")
)

var (
	nameStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorHighlight)
	priceStyle    = lipgloss.NewStyle().Foreground(colorLemon)
	categoryStyle = lipgloss.NewStyle().Foreground(colorSubtle).Italic(true)
	descStyle     = lipgloss.NewStyle().Foreground(colorSubtle).PaddingLeft(2)
	labelStyle    = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(colorLemon)
	successStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
)

// renderer writes command output, styled only when w is a terminal.
type renderer struct {
	w      io.Writer
	styled bool
}

func newRenderer(w io.Writer) renderer {
	return renderer{w: w, styled: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (r renderer) paint(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

func (r renderer) menu(items []model.MenuItem) {
	if len(items) == 0 {
		r.hint(i18n.T("menu.empty"))
		return
	}
	width := 0
	for _, it := range items {
		if n := len([]rune(it.Name)); n > width {
			width = n
		}
	}
	for _, it := range items {
		name := it.Name + strings.Repeat(" ", width-len([]rune(it.Name)))
		fmt.Fprintf(r.w, "%s  %s  %s\n",
			r.paint(nameStyle, name),
			r.paint(priceStyle, fmt.Sprintf("$%6.2f", it.Price)),
			r.paint(categoryStyle, it.Category))
		if it.Description != "" {
			fmt.Fprintln(r.w, r.paint(descStyle, it.Description))
		}
	}
	fmt.Fprintln(r.w, r.paint(categoryStyle, i18n.T("menu.count", len(items))))
}

func (r renderer) categories(cats []string) {
	for _, c := range cats {
		fmt.Fprintln(r.w, r.paint(categoryStyle, c))
	}
}

func (r renderer) profile(p model.Profile) {
	row := func(label, value string) {
		fmt.Fprintf(r.w, "%s %s\n", r.paint(labelStyle, label+":"), value)
	}
	fmt.Fprintln(r.w, r.paint(nameStyle, "["+p.Initials()+"]"))
	row(i18n.T("profile.first_name"), p.FirstName)
	row(i18n.T("profile.last_name"), p.LastName)
	row(i18n.T("profile.email"), p.Email)
	row(i18n.T("profile.phone"), p.PhoneNumber)
	if p.AvatarURI != "" {
		row(i18n.T("profile.avatar"), p.AvatarURI)
	}
	n := p.Notifications
	row(i18n.T("profile.notif.order_status"), yesNo(n.OrderStatus))
	row(i18n.T("profile.notif.password_changes"), yesNo(n.PasswordChanges))
	row(i18n.T("profile.notif.special_offers"), yesNo(n.SpecialOffers))
	row(i18n.T("profile.notif.newsletter"), yesNo(n.Newsletter))
}

func yesNo(b bool) string {
	if b {
		return i18n.T("yes")
	}
	return i18n.T("no")
}

func (r renderer) hint(msg string)    { fmt.Fprintln(r.w, r.paint(hintStyle, msg)) }
func (r renderer) success(msg string) { fmt.Fprintln(r.w, r.paint(successStyle, msg)) }
func (r renderer) failure(msg string) { fmt.Fprintln(r.w, r.paint(errorStyle, msg)) }
