package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/inkmark/inkmark/config"
	"github.com/inkmark/inkmark/editor"
	"github.com/inkmark/inkmark/format"
	"github.com/inkmark/inkmark/preview"
	"github.com/inkmark/inkmark/storage"
)

const chromeRows = 2 // toolbar + status bar

type appKeyMap struct {
	Save          key.Binding
	TogglePreview key.Binding
	Help          key.Binding
	Quit          key.Binding
	Close         key.Binding
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		Save:          key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		TogglePreview: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "preview")),
		Help:          key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "help")),
		Quit:          key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Close:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

type appConfig struct {
	Path   string
	Text   string
	Prefs  config.Preferences
	Store  storage.Store
	Logger *slog.Logger
}

type appStyles struct {
	Toolbar     lipgloss.Style
	ToolbarKey  lipgloss.Style
	StatusBar   lipgloss.Style
	StatusDirty lipgloss.Style
	HelpBox     lipgloss.Style
}

func defaultAppStyles() appStyles {
	return appStyles{
		Toolbar:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
		ToolbarKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Background(lipgloss.Color("236")).Bold(true),
		StatusBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusDirty: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		HelpBox:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}

type autosaveTickMsg struct{}

type appModel struct {
	cfg    appConfig
	km     appKeyMap
	styles appStyles

	ed        editor.Model
	previewVP viewport.Model
	renderer  *preview.Renderer

	width  int
	height int

	showPreview bool
	showHelp    bool
	status      string

	savedTextVersion uint64
}

func newApp(cfg appConfig) (appModel, error) {
	logger := cfg.Logger
	ed := editor.New(editor.Config{
		Text:         cfg.Text,
		ShowLineNums: cfg.Prefs.LineNumbers,
		Style:        editor.DefaultStyle(),
		Highlighter:  editor.NewMarkdownHighlighter(editor.DefaultMarkdownStyle()),
		Clipboard:    &memClipboard{},
		OnChange: func(ev editor.ChangeEvent) {
			logger.Debug("buffer changed", "version", ev.Version, "row", ev.Cursor.Row, "col", ev.Cursor.GraphemeCol)
		},
	})

	renderer, err := preview.NewRenderer(80, previewStyle(cfg.Prefs))
	if err != nil {
		return appModel{}, err
	}

	return appModel{
		cfg:          cfg,
		km:           defaultAppKeyMap(),
		styles:       defaultAppStyles(),
		ed:           ed,
		previewVP:    viewport.New(0, 0),
		renderer:     renderer,
		savedTextVersion: ed.Buffer().TextVersion(),
	}, nil
}

// previewStyle maps preferences onto a glamour style name. An explicit
// preview_style wins; otherwise the theme picks light or auto.
func previewStyle(prefs config.Preferences) string {
	if prefs.PreviewStyle != "" {
		return prefs.PreviewStyle
	}
	if prefs.Theme == "light" {
		return "light"
	}
	return ""
}

func (m appModel) Init() tea.Cmd {
	if m.cfg.Prefs.Autosave && m.cfg.Path != "" {
		return m.autosaveTick()
	}
	return nil
}

func (m appModel) autosaveTick() tea.Cmd {
	d := time.Duration(m.cfg.Prefs.AutosaveSecs) * time.Second
	return tea.Tick(d, func(time.Time) tea.Msg { return autosaveTickMsg{} })
}

func (m appModel) dirty() bool {
	return m.ed.Buffer().TextVersion() != m.savedTextVersion
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		body := maxInt(msg.Height-chromeRows, 0)
		m.ed = m.ed.SetSize(msg.Width, body)
		m.previewVP.Width = msg.Width
		m.previewVP.Height = body
		if m.showPreview {
			m.refreshPreview()
		}
		return m, nil

	case autosaveTickMsg:
		if m.dirty() && m.cfg.Path != "" {
			m.save()
		}
		return m, m.autosaveTick()

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.ed, cmd = m.ed.Update(msg)
	return m, cmd
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.km.Help) || key.Matches(msg, m.km.Close) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.km.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.km.Save):
		if m.cfg.Path == "" {
			m.status = "no file to save to"
			return m, nil
		}
		m.save()
		return m, nil

	case key.Matches(msg, m.km.TogglePreview):
		m.showPreview = !m.showPreview
		if m.showPreview {
			m.ed = m.ed.Blur()
			m.refreshPreview()
		} else {
			m.ed = m.ed.Focus()
		}
		return m, nil

	case key.Matches(msg, m.km.Help):
		m.showHelp = true
		return m, nil
	}

	if m.showPreview {
		if key.Matches(msg, m.km.Close) {
			m.showPreview = false
			m.ed = m.ed.Focus()
			return m, nil
		}
		var cmd tea.Cmd
		m.previewVP, cmd = m.previewVP.Update(msg)
		return m, cmd
	}

	m.status = ""
	var cmd tea.Cmd
	m.ed, cmd = m.ed.Update(msg)
	return m, cmd
}

func (m *appModel) save() {
	text := m.ed.Buffer().Text()
	if err := m.cfg.Store.Save(m.cfg.Path, text); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		m.cfg.Logger.Error("save failed", "path", m.cfg.Path, "err", err)
		return
	}
	m.savedTextVersion = m.ed.Buffer().TextVersion()
	m.status = "saved " + m.cfg.Path
	m.cfg.Logger.Info("saved", "path", m.cfg.Path, "bytes", len(text))
}

func (m *appModel) refreshPreview() {
	width := m.width
	if max := m.cfg.Prefs.PreviewWidth; max > 0 && max < width {
		width = max
	}
	if err := m.renderer.SetWidth(width); err != nil {
		m.status = fmt.Sprintf("preview failed: %v", err)
		return
	}
	out, err := m.renderer.Render(m.ed.Buffer().Text())
	if err != nil {
		m.status = fmt.Sprintf("preview failed: %v", err)
		return
	}
	m.previewVP.SetContent(out)
	m.previewVP.GotoTop()
}

func (m appModel) View() string {
	body := m.ed.View()
	if m.showPreview {
		body = m.previewVP.View()
	}

	base := m.toolbarView() + "\n" + body + "\n" + m.statusView()
	if m.showHelp {
		return overlay.New(staticView(m.helpView()), staticView(base), overlay.Center, overlay.Center, 0, 0).View()
	}
	return base
}

// staticView adapts a rendered string to the tea.Model the overlay
// compositor expects.
type staticView string

func (v staticView) Init() tea.Cmd                       { return nil }
func (v staticView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v staticView) View() string                        { return string(v) }

func (m appModel) toolbarView() string {
	ekm := editor.DefaultKeyMap()
	bindings := map[format.Kind]key.Binding{
		format.Bold:       ekm.Bold,
		format.Italic:     ekm.Italic,
		format.Code:       ekm.Code,
		format.Heading:    ekm.Heading,
		format.BulletList: ekm.Bullet,
		format.Quote:      ekm.Quote,
		format.Link:       ekm.Link,
	}

	out := ""
	for _, kind := range format.Kinds() {
		b := bindings[kind]
		out += m.styles.ToolbarKey.Render(" "+b.Help().Key) + m.styles.Toolbar.Render(" "+kind.String()+" ")
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(out)
}

func (m appModel) statusView() string {
	name := m.cfg.Path
	if name == "" {
		name = "[no file]"
	}
	mark := ""
	if m.dirty() {
		mark = m.styles.StatusDirty.Render(" *")
	}

	buf := m.ed.Buffer()
	cur := buf.Cursor()
	left := m.styles.StatusBar.Render(name) + mark
	mid := ""
	if m.status != "" {
		mid = "  " + m.styles.StatusBar.Render(m.status)
	}
	mode := "edit"
	if m.showPreview {
		mode = "preview"
	}
	right := m.styles.StatusBar.Render(fmt.Sprintf("  %s | %d words | %d:%d | ctrl+g help",
		mode, editor.WordCount(buf.Text()), cur.Row+1, cur.GraphemeCol+1))

	return lipgloss.NewStyle().MaxWidth(m.width).Render(left + mid + right)
}

func (m appModel) helpView() string {
	ekm := editor.DefaultKeyMap()
	rows := []key.Binding{
		m.km.Save, m.km.TogglePreview, m.km.Quit,
		ekm.Bold, ekm.Italic, ekm.Code,
		ekm.Heading, ekm.Bullet, ekm.Quote, ekm.Link,
		ekm.SelectAll, ekm.Copy, ekm.Cut, ekm.Paste,
	}

	out := "inkmark keys\n\n"
	for _, b := range rows {
		h := b.Help()
		out += fmt.Sprintf("  %-12s %s\n", h.Key, h.Desc)
	}
	out += "\n  " + m.km.Close.Help().Key + " to close"
	return m.styles.HelpBox.Render(out)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
