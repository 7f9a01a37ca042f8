// Copyright 2026 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"
)

// Screen states: pick a flavor, pick a duplicate policy, work.
type WorkbenchScreen int

const (
	ScreenFlavor WorkbenchScreen = iota
	ScreenPolicy
	ScreenWorkbench
)

// Focus targets cycled with tab.
const (
	FocusInput = iota
	FocusTree
	FocusOutput
)

// Model represents the Bubble Tea application state
type Model struct {
	ready  bool
	screen WorkbenchScreen

	pickerList list.Model
	balanced   bool
	keysOnly   bool

	commandInput   textinput.Model
	treeViewport   viewport.Model
	outputViewport viewport.Model

	session   *Session
	helpCache *cache.Cache

	focusIndex int
	history    []string

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// pickerItem is one choice in the startup lists
type pickerItem struct {
	title string
	desc  string
}

func (i pickerItem) FilterValue() string { return i.title }
func (i pickerItem) Title() string       { return i.title }
func (i pickerItem) Description() string { return i.desc }

func flavorItems() []list.Item {
	return []list.Item{
		pickerItem{"AVL key-value", "self-balancing tree of key/value pairs"},
		pickerItem{"AVL key-only", "self-balancing tree of bare keys"},
		pickerItem{"BST key-value", "plain binary search tree of key/value pairs"},
		pickerItem{"BST key-only", "plain binary search tree of bare keys"},
	}
}

func policyItems() []list.Item {
	return []list.Item{
		pickerItem{"Allow duplicates", "a key may occur more than once"},
		pickerItem{"Reject duplicates", "inserting an existing key is refused"},
	}
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// InitialModel creates the initial model. A nil session starts at the
// flavor picker; a preconfigured one goes straight to the workbench.
func InitialModel(session *Session, hc *cache.Cache) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 5 Mango | search 5 | remove 5 | help ..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	treeViewport := viewport.New(0, 0)

	outputViewport := viewport.New(0, 0)
	outputViewport.SetContent("Type a command and press enter. `help` lists everything.")

	pickerList := list.New(flavorItems(), list.NewDefaultDelegate(), 0, 0)
	pickerList.Title = "Pick a tree flavor"
	pickerList.SetShowHelp(false)
	pickerList.SetFilteringEnabled(false)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	screen := ScreenFlavor
	if session != nil {
		screen = ScreenWorkbench
		treeViewport.SetContent(session.Render())
	}

	return Model{
		screen:          screen,
		pickerList:      pickerList,
		commandInput:    ti,
		treeViewport:    treeViewport,
		outputViewport:  outputViewport,
		session:         session,
		helpCache:       hc,
		focusIndex:      FocusInput,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			return m, tea.Quit
		}
		if m.screen != ScreenWorkbench {
			return m.updatePicker(msg)
		}
		switch msg.String() {
		case "tab":
			m.focusIndex = (m.focusIndex + 1) % 3
			if m.focusIndex == FocusInput {
				m.commandInput.Focus()
			} else {
				m.commandInput.Blur()
			}
			return m, nil
		case "ctrl+y":
			// Copy the tree diagram so it can be pasted into notes.
			return m, func() tea.Msg {
				copyToClipboard(m.session.Render())
				return nil
			}
		case "enter":
			if m.focusIndex == FocusInput {
				line := strings.TrimSpace(m.commandInput.Value())
				if line == "quit" || line == "exit" {
					return m, tea.Quit
				}
				m.runCommand(line)
				m.commandInput.SetValue("")
				return m, nil
			}
		case "up", "k":
			if m.focusIndex == FocusTree {
				m.treeViewport.LineUp(1)
				return m, nil
			}
			if m.focusIndex == FocusOutput {
				m.outputViewport.LineUp(1)
				return m, nil
			}
		case "down", "j":
			if m.focusIndex == FocusTree {
				m.treeViewport.LineDown(1)
				return m, nil
			}
			if m.focusIndex == FocusOutput {
				m.outputViewport.LineDown(1)
				return m, nil
			}
		case "pgup":
			if m.focusIndex == FocusTree {
				m.treeViewport.LineUp(m.treeViewport.Height)
				return m, nil
			}
		case "pgdown":
			if m.focusIndex == FocusTree {
				m.treeViewport.LineDown(m.treeViewport.Height)
				return m, nil
			}
		}

		switch m.focusIndex {
		case FocusInput:
			m.commandInput, cmd = m.commandInput.Update(msg)
			cmds = append(cmds, cmd)
		case FocusTree:
			m.treeViewport, cmd = m.treeViewport.Update(msg)
			cmds = append(cmds, cmd)
		default:
			m.outputViewport, cmd = m.outputViewport.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, tea.Batch(cmds...)
}

// updatePicker drives the startup flavor and duplicate-policy lists.
func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		switch m.screen {
		case ScreenFlavor:
			idx := m.pickerList.Index()
			m.balanced = idx == 0 || idx == 1
			m.keysOnly = idx == 1 || idx == 3
			m.pickerList.SetItems(policyItems())
			m.pickerList.Select(0)
			m.pickerList.Title = "Duplicate keys?"
			m.screen = ScreenPolicy
		case ScreenPolicy:
			m.session = NewSession(m.balanced, m.keysOnly, m.pickerList.Index() == 0)
			m.treeViewport.SetContent(m.session.Render())
			m.screen = ScreenWorkbench
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.pickerList, cmd = m.pickerList.Update(msg)
	return m, cmd
}

// runCommand feeds one line to the session and routes the result into
// the output pane. help gets the rendered guide instead.
func (m *Model) runCommand(line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}
	m.history = append(m.history, trimmed)

	verb := strings.ToLower(strings.Fields(trimmed)[0])
	if verb == "help" {
		m.outputViewport.SetContent(renderGuide(m.helpCache, m.glamourRenderer))
		return
	}

	result, err := m.session.Execute(trimmed)
	if err != nil {
		m.outputViewport.SetContent(m.styles.ErrorMessage.Render(err.Error()))
		return
	}
	if result != "" {
		m.outputViewport.SetContent(m.styles.SuccessMessage.Render(result))
	}
	m.treeViewport.SetContent(m.session.Render())
}

func (m *Model) updateLayout() {
	inputHeight := 3
	outputHeight := 6
	treeHeight := m.height - inputHeight - outputHeight - 8
	if treeHeight < 3 {
		treeHeight = 3
	}

	m.commandInput.Width = m.width - 8
	m.treeViewport.Width = m.width - 4
	m.treeViewport.Height = treeHeight
	m.outputViewport.Width = m.width - 4
	m.outputViewport.Height = outputHeight
	m.pickerList.SetSize(m.width-6, m.height-4)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	boxWidth := m.width - 2

	if m.screen != ScreenWorkbench {
		return m.styles.BorderFocused.
			Width(boxWidth).
			Padding(0, 1).
			Render(m.pickerList.View())
	}

	inputStyle := m.styles.BorderBlurred
	inputTitle := " ⌨ Command"
	if m.focusIndex == FocusInput {
		inputStyle = m.styles.BorderFocused
		inputTitle = " ⌨ Command (Active)"
	}
	inputBox := inputStyle.
		Width(boxWidth).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(inputTitle),
			m.commandInput.View(),
		))

	treeStyle := m.styles.BorderBlurred
	treeTitle := fmt.Sprintf(" 🌳 %s", m.session.Flavor())
	if m.focusIndex == FocusTree {
		treeStyle = m.styles.BorderFocused
		treeTitle += " (Active)"
	}
	treeBox := treeStyle.
		Width(boxWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(treeTitle),
			m.treeViewport.View(),
		))

	outputStyle := m.styles.BorderBlurred
	outputTitle := " 📋 Result"
	if m.focusIndex == FocusOutput {
		outputStyle = m.styles.BorderFocused
		outputTitle = " 📋 Result (Active)"
	}
	outputBox := outputStyle.
		Width(boxWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(outputTitle),
			m.outputViewport.View(),
		))

	footer := m.renderFooter()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		inputBox,
		treeBox,
		outputBox,
		footer,
	)
}

func (m Model) renderFooter() string {
	bindings := [][2]string{
		{"enter", "run"},
		{"tab", "cycle focus"},
		{"ctrl+y", "copy tree"},
		{"esc", "quit"},
	}
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = m.styles.HelpKey.Render(b[0]) + m.styles.HelpDesc.Render(" "+b[1])
	}
	return m.styles.HelpDesc.Render(" ") + strings.Join(parts, m.styles.HelpDesc.Render(" • "))
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "📋 Copied tree to clipboard.\n")
	return nil
}

// runWorkbench starts the Bubble Tea application
func runWorkbench(session *Session, hc *cache.Cache) error {
	model := InitialModel(session, hc)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
