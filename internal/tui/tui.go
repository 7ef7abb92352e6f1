package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ogzhncrt/dailydo/internal/model"
	"github.com/ogzhncrt/dailydo/internal/store"
	"github.com/ogzhncrt/dailydo/internal/ui"
)

// listItem adapts a model.Record to bubbles/list.Item. New items added in the
// session carry id 0 until persisted.
type listItem struct {
	id   int
	text string
	done bool
}

func (i listItem) titleText() string {
	t := ui.Current()
	box := t.BoxUnchecked
	if i.done {
		box = t.BoxChecked
	}
	return fmt.Sprintf("%s %s", box, i.text)
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.titleText() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.text }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()
	box := t.Muted.Render(t.BoxUnchecked)
	text := it.text
	if it.done {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

type sessionModel struct {
	list    list.Model
	changed bool

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	width, height int
}

// Run starts the Bubble Tea list and persists through st when the session
// changed anything. Reports whether a save happened.
func Run(doc model.Document, st store.Store) (bool, error) {
	m := newSession(doc)
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	fm, ok := finalModel.(sessionModel)
	if !ok || !fm.changed {
		return false, nil
	}
	out := documentFromItems(fm.list.Items())
	if err := st.Save(out); err != nil {
		return false, fmt.Errorf("save: %w", err)
	}
	return true, nil
}

func newSession(doc model.Document) sessionModel {
	li := itemsFromDocument(doc)

	l := list.New(li, itemDelegate{}, 0, 0)
	l.Title = headerTitle(doc)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, toggleBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, toggleBind} }

	m := sessionModel{list: l}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New todo title..."
	m.ti.CharLimit = 200
	return m
}

func headerTitle(doc model.Document) string {
	t := ui.Current()
	dn, pn := doc.Stats()
	return fmt.Sprintf("%s   %s %d  %s %d  %s",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), dn,
		t.Pending.Render(t.SymPending), pn,
		t.Muted.Render(ui.ProgressBar(dn, dn+pn, 20)),
	)
}

func (m sessionModel) Init() tea.Cmd { return nil }

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		return m, nil
	}

	// add mode
	if m.adding {
		var cmd tea.Cmd
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "enter":
				title := strings.TrimSpace(m.ti.Value())
				if title == "" {
					m.addErr = "Title cannot be empty"
					return m, nil
				}
				at := m.list.GlobalIndex() + 1
				if at < 0 {
					at = 0
				}
				m.list.InsertItem(at, listItem{text: title})
				m.changed = true
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				m.adding = false
				return m, nil
			case "esc":
				m.adding = false
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	// While the filter input is capturing keystrokes every key belongs to the
	// list; intercepting here would turn query runes into actions.
	if k, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch k.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			// The cursor indexes the visible (possibly filtered) items;
			// GlobalIndex maps it back onto the full slice.
			i := m.list.GlobalIndex()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					li.done = !li.done
					m.list.SetItem(i, li)
					m.changed = true
					m.list.Title = headerTitle(documentFromItems(m.list.Items()))
				}
			}
			return m, nil
		case "a":
			m.adding = true
			m.ti.SetValue("")
			m.ti.Focus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m sessionModel) View() string {
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}
	listHeight := h - 4
	if m.adding {
		listHeight = h - 6
	}
	m.list.SetSize(w-2, listHeight)

	content := m.list.View()
	if m.adding {
		title := "Add new todo"
		if m.addErr != "" {
			title += " — " + ui.Current().Error.Render(m.addErr)
		}
		content = content + "\n" + panelString(title+"\n"+m.ti.View())
	}
	return panelString(content)
}

func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}

// -------------- document <-> list items --------------

func itemsFromDocument(doc model.Document) []list.Item {
	li := make([]list.Item, 0, len(doc.Todos))
	for _, r := range doc.Todos {
		li = append(li, listItem{id: r.ID, text: r.Title, done: r.Complete})
	}
	return li
}

// documentFromItems rebuilds the persisted document. Items added during the
// session have no id yet and get fresh ones above the session max, keeping
// ids unique and monotone.
func documentFromItems(items []list.Item) model.Document {
	max := 0
	for _, it := range items {
		if li, ok := it.(listItem); ok && li.id > max {
			max = li.id
		}
	}
	next := max + 1
	var doc model.Document
	for _, it := range items {
		li, ok := it.(listItem)
		if !ok {
			continue
		}
		id := li.id
		if id == 0 {
			id = next
			next++
		}
		doc.Todos = append(doc.Todos, model.Record{Title: li.text, Complete: li.done, ID: id})
	}
	return doc
}
