package ui

import (
	"fmt"
	"time"

	"github.com/Dicklesworthstone/cats_viewer/pkg/carousel"
	"github.com/Dicklesworthstone/cats_viewer/pkg/likes"
	"github.com/Dicklesworthstone/cats_viewer/pkg/model"
	"github.com/Dicklesworthstone/cats_viewer/pkg/ticker"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Tab identifies which category of the tabbed panel is shown
type Tab int

const (
	TabAbout Tab = iota
	TabCharacteristics
	TabFacts
	TabBreeds
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabAbout:
		return "About"
	case TabCharacteristics:
		return "Characteristics"
	case TabFacts:
		return "Fun Facts"
	case TabBreeds:
		return "Breeds"
	default:
		return "?"
	}
}

// noticeDelay is how long status notices (copy, reload) stay visible.
const noticeDelay = 2 * time.Second

// ContentReloadedMsg replaces the page content. Err reports a failed reload;
// the current content is kept in that case.
type ContentReloadedMsg struct {
	Content model.Content
	Err     error
}

// noticeFadeMsg clears the status notice it was scheduled for.
type noticeFadeMsg struct {
	seq uint64
}

// clipboardResultMsg is sent when copying the image URL completes.
type clipboardResultMsg struct {
	url string
	err error
}

// Options tunes a Model. Zero values select the defaults.
type Options struct {
	Theme        Theme
	TickInterval time.Duration
	AckDelay     time.Duration
	Logger       *zap.Logger
	Clipboard    func(string) error
}

// Model is the whole page. It owns every piece of view state and lives
// exactly as long as the program displaying it.
type Model struct {
	content model.Content
	theme   Theme
	keys    keyMap
	logger  *zap.Logger

	nav      carousel.Navigator
	facts    ticker.Ticker
	likes    likes.Counter
	progress progress.Model
	markdown *MarkdownRenderer

	tab           Tab
	breedCursor   int
	selectedBreed string // weak reference into content.Breeds, by name
	filter        textinput.Model
	filtering     bool

	notice        string
	noticeIsError bool
	noticeSeq     uint64

	helpOverlay HelpOverlayModel
	keyHelp     help.Model
	clipboard   func(string) error

	width    int
	height   int
	started  bool
	quitting bool
}

// NewModel creates the page for content. Content that cannot drive the
// carousel or the fact ticker is rejected here, before anything is shown.
func NewModel(content model.Content, opts Options) (*Model, error) {
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("cannot build view: %w", err)
	}
	nav, err := carousel.New(len(content.Images))
	if err != nil {
		return nil, fmt.Errorf("cannot build view: %w", err)
	}

	theme := opts.Theme
	if theme.Renderer == nil {
		theme = DefaultTheme(nil)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	write := opts.Clipboard
	if write == nil {
		write = clipboard.WriteAll
	}

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter breeds"
	filter.CharLimit = 40

	keys := defaultKeyMap()
	m := &Model{
		content:     content,
		theme:       theme,
		keys:        keys,
		logger:      logger,
		nav:         nav,
		facts:       ticker.New(len(content.Facts), opts.TickInterval),
		likes:       likes.NewCounter(opts.AckDelay),
		progress:    progress.New(progress.WithGradient("#C084FC", "#DB2777")),
		markdown:    NewMarkdownRenderer(pageWidth(0), theme),
		filter:      filter,
		helpOverlay: NewHelpOverlayModel(keys, theme),
		keyHelp:     help.New(),
		clipboard:   write,
	}
	m.SetSize(0, 0)
	return m, nil
}

// Init starts the fact ticker. The ticker runs until the program quits.
func (m *Model) Init() tea.Cmd {
	m.started = true
	m.logger.Debug("view started",
		zap.Int("images", len(m.content.Images)),
		zap.Int("facts", len(m.content.Facts)),
		zap.Duration("tick", m.facts.Interval()),
	)
	return m.facts.Start()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case ticker.TickMsg:
		var cmd tea.Cmd
		m.facts, cmd = m.facts.Update(msg)
		return m, cmd

	case likes.ClearAckMsg:
		m.likes, _ = m.likes.Update(msg)
		return m, nil

	case noticeFadeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
			m.noticeIsError = false
		}
		return m, nil

	case clipboardResultMsg:
		if msg.err != nil {
			m.logger.Warn("clipboard write failed", zap.Error(msg.err))
			return m, m.setNotice("Clipboard unavailable: "+msg.err.Error(), true)
		}
		return m, m.setNotice("Copied image URL", false)

	case ContentReloadedMsg:
		return m, m.applyContent(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.helpOverlay.IsVisible() {
		m.helpOverlay, _ = m.helpOverlay.Update(msg)
		return nil
	}

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.helpOverlay.Toggle()
		return nil
	}

	if m.tab == TabBreeds {
		if cmd, handled := m.handleBreedKey(msg); handled {
			return cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.PrevImage):
		m.nav = m.nav.Prev()
	case key.Matches(msg, m.keys.NextImage):
		m.nav = m.nav.Next()
	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tabCount
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab - 1 + tabCount) % tabCount
	case key.Matches(msg, m.keys.Tab1):
		m.tab = TabAbout
	case key.Matches(msg, m.keys.Tab2):
		m.tab = TabCharacteristics
	case key.Matches(msg, m.keys.Tab3):
		m.tab = TabFacts
	case key.Matches(msg, m.keys.Tab4):
		m.tab = TabBreeds
	case key.Matches(msg, m.keys.Like):
		return m.likes.Increment()
	case key.Matches(msg, m.keys.Pause):
		return m.facts.Toggle()
	case key.Matches(msg, m.keys.SkipFact):
		m.facts.Skip()
	case key.Matches(msg, m.keys.CopyURL):
		return m.copyImageURL()
	}
	return nil
}

func (m *Model) handleBreedKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	n := len(m.visibleBreeds())
	cols := m.gridColumns(pageWidth(m.width))
	switch {
	case key.Matches(msg, m.keys.GridUp):
		m.breedCursor = moveGridCursor(m.breedCursor, n, cols, gridUp)
	case key.Matches(msg, m.keys.GridDown):
		m.breedCursor = moveGridCursor(m.breedCursor, n, cols, gridDown)
	case key.Matches(msg, m.keys.GridLeft):
		m.breedCursor = moveGridCursor(m.breedCursor, n, cols, gridLeft)
	case key.Matches(msg, m.keys.GridRight):
		m.breedCursor = moveGridCursor(m.breedCursor, n, cols, gridRight)
	case key.Matches(msg, m.keys.Select):
		m.toggleSelection()
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m.filter.Focus(), true
	case key.Matches(msg, m.keys.Clear):
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.clampBreedCursor()
		} else {
			m.selectedBreed = ""
		}
	default:
		return nil, false
	}
	return nil, true
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.clampBreedCursor()
		return nil
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.breedCursor = 0
	return cmd
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.facts.Stop()
	m.logger.Debug("view stopped", zap.Int("likes", m.likes.Count()))
	return tea.Quit
}

func (m *Model) copyImageURL() tea.Cmd {
	url := m.CurrentImage().URL
	write := m.clipboard
	return func() tea.Msg {
		return clipboardResultMsg{url: url, err: write(url)}
	}
}

// setNotice shows text in the status line and schedules its removal. A newer
// notice replaces an older one together with its pending removal.
func (m *Model) setNotice(text string, isError bool) tea.Cmd {
	m.notice = text
	m.noticeIsError = isError
	m.noticeSeq++
	seq := m.noticeSeq
	return tea.Tick(noticeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{seq: seq}
	})
}

func (m *Model) applyContent(msg ContentReloadedMsg) tea.Cmd {
	err := msg.Err
	if err == nil {
		err = msg.Content.Validate()
	}
	if err != nil {
		m.logger.Warn("keeping previous content", zap.Error(err))
		return m.setNotice("Reload failed: "+err.Error(), true)
	}

	nav, err := m.nav.Resize(len(msg.Content.Images))
	if err != nil {
		return m.setNotice("Reload failed: "+err.Error(), true)
	}
	m.nav = nav
	m.content = msg.Content
	m.facts.SetFactCount(len(msg.Content.Facts))
	if _, ok := m.content.Breed(m.selectedBreed); !ok {
		m.selectedBreed = ""
	}
	m.clampBreedCursor()

	m.logger.Info("content reloaded",
		zap.Int("images", len(m.content.Images)),
		zap.Int("facts", len(m.content.Facts)),
		zap.Int("breeds", len(m.content.Breeds)),
	)
	return m.setNotice("Content reloaded", false)
}

// SetSize sets the terminal dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.helpOverlay.SetSize(width, height)
	m.keyHelp.Width = width

	pw := pageWidth(width)
	barWidth := pw - 4 // panel border + padding
	if barWidth < MinBoxWidth {
		barWidth = MinBoxWidth
	}
	m.progress.Width = barWidth
	m.markdown.SetWidth(pw, m.theme)
}

// CurrentImage returns the image under the carousel
func (m *Model) CurrentImage() model.ImageItem {
	return m.content.Images[m.nav.Index()]
}

// ImageIndex returns the carousel position
func (m *Model) ImageIndex() int { return m.nav.Index() }

// CurrentFact returns the fact of the moment
func (m *Model) CurrentFact() string {
	return m.content.Facts[m.facts.State().FactIndex]
}

// FactState returns the ticker position
func (m *Model) FactState() ticker.State { return m.facts.State() }

// TickerRunning reports whether the fact ticker is scheduled
func (m *Model) TickerRunning() bool { return m.facts.Running() }

// Likes returns the like count
func (m *Model) Likes() int { return m.likes.Count() }

// LikeAcknowledged reports whether the thank-you banner is showing
func (m *Model) LikeAcknowledged() bool { return m.likes.Acknowledged() }

// ActiveTab returns the selected tab
func (m *Model) ActiveTab() Tab { return m.tab }

// Notice returns the current status notice, if any
func (m *Model) Notice() string { return m.notice }

// Content returns the content being displayed
func (m *Model) Content() model.Content { return m.content }
