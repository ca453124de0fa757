// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui is a terminal front end for a benchview.Session.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/benchmarkify/benchmarkify/benchview"
	"github.com/benchmarkify/benchmarkify/share"
	"github.com/benchmarkify/benchmarkify/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Options configures a Model.
type Options struct {
	// BaseURL is the base of share links.
	BaseURL string
	// Clipboard receives share links. Defaults to the system
	// clipboard.
	Clipboard share.Clipboard
}

// Model is the bubbletea model of the viewer.
type Model struct {
	ctx  context.Context
	s    *benchview.Session
	opts Options

	help   help.Model
	input  textinput.Model
	saving bool

	cursor  int
	profile int // Index of the last loaded profile
	status  string
	failed  bool
}

// New returns a model driving s.
func New(ctx context.Context, s *benchview.Session, opts Options) Model {
	if opts.Clipboard == nil {
		opts.Clipboard = share.SystemClipboard{}
	}
	in := textinput.New()
	in.Placeholder = "profile name"
	in.CharLimit = 64
	in.Width = 32
	return Model{ctx: ctx, s: s, opts: opts, help: help.New(), input: in, profile: -1}
}

// copiedMsg reports the outcome of copying a share link.
type copiedMsg struct{ err error }

// copyLink copies link with share.Copy and reports the outcome as a
// copiedMsg. It reports nothing once ctx is done.
func copyLink(ctx context.Context, cb share.Clipboard, link string) tea.Cmd {
	return func() tea.Msg {
		done := make(chan error, 1)
		share.Copy(ctx, cb, link, func(err error) { done <- err })
		select {
		case err := <-done:
			return copiedMsg{err}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case copiedMsg:
		// Only a successful copy is confirmed.
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("copy failed: %v", msg.err), true)
		} else {
			m.setStatus("Share link copied to clipboard.", false)
		}
		return m, nil

	case tea.KeyMsg:
		if m.saving {
			return m.updateSaving(msg)
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m *Model) setStatus(s string, failed bool) {
	m.status, m.failed = s, failed
}

func (m Model) updateSaving(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.saving = false
		m.input.Blur()
		name := m.input.Value()
		m.input.Reset()
		if strings.TrimSpace(name) == "" {
			m.setStatus("", false)
			return m, nil
		}
		if err := m.s.SaveProfile(m.ctx, name); err != nil {
			m.setStatus(err.Error(), true)
		} else {
			m.setStatus("Saved profile "+name+".", false)
		}
		return m, nil
	case tea.KeyEsc, tea.KeyCtrlC:
		m.saving = false
		m.input.Blur()
		m.input.Reset()
		m.setStatus("", false)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	names := m.s.Benchmarks().Names()
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(names)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Toggle):
		if m.cursor < len(names) {
			f := m.s.Filter()
			if f == nil {
				f = benchview.NewFilter(names...)
			}
			m.s.SetFilter(f.Toggle(names[m.cursor]))
		}
	case key.Matches(msg, keys.All):
		m.s.SetFilter(nil)
	case key.Matches(msg, keys.Clear):
		m.s.Clear()
		m.cursor = 0
	case key.Matches(msg, keys.Save):
		m.saving = true
		m.setStatus("", false)
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, keys.Profile):
		profiles := m.s.Profiles()
		if len(profiles) == 0 {
			m.setStatus("No saved profiles.", true)
			break
		}
		m.profile = (m.profile + 1) % len(profiles)
		if m.s.LoadProfile(profiles[m.profile]) {
			m.cursor = 0
			m.setStatus("Loaded profile "+profiles[m.profile]+".", false)
		}
	case key.Matches(msg, keys.Share):
		link, err := m.s.ShareLink(m.opts.BaseURL)
		if err != nil {
			m.setStatus(err.Error(), true)
			break
		}
		return m, copyLink(m.ctx, m.opts.Clipboard, link)
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Benchmarkify"))
	b.WriteString("\n")

	if err := m.s.Err(); err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
		b.WriteString("\n\n")
	}

	f := m.s.Filter()
	for i, name := range m.s.Benchmarks().Names() {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		check := "[ ]"
		if f == nil || f.Has(name) {
			check = "[x]"
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, check, name)
	}
	b.WriteString("\n")
	b.WriteString(table.Text(table.Build(m.s.View(), f)))

	if m.saving {
		b.WriteString("\nSave as: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		style := okStyle
		if m.failed {
			style = errorStyle
		}
		b.WriteString("\n")
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	return b.String()
}

// Run runs the viewer on the terminal until the user quits.
func Run(ctx context.Context, s *benchview.Session, opts Options) error {
	_, err := tea.NewProgram(New(ctx, s, opts), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
