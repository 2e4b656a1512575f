package repl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/pcomb/json"
	"github.com/ardnew/pcomb/log"
	"github.com/ardnew/pcomb/query"
)

// editDocMsg is sent when document editing completes successfully.
type editDocMsg struct{ doc any }

// editCancelledMsg is sent when the user cleared the editor content.
type editCancelledMsg struct{}

// editDeclinedMsg is sent when the user declined to re-edit after a parse
// error.
type editDeclinedMsg struct{}

// editErrorMsg is sent when the edit process encounters a non-parse error.
type editErrorMsg struct{ err error }

const (
	evalPrompt = "➜ "
	ctrlPrompt = " :"
)

func helpMessage() string {
	return `
: Commands (press Esc to toggle mode):

  help         Print this message
  keys [path]  List the members of doc or of a member path (e.g. keys servers.0)
  edit         Edit the document in external $EDITOR
  reload       Re-read the document from its source file
  clear        Clear screen
  quit         Exit REPL

Usage:
  Type an expr-lang expression to evaluate it (the document is "doc")
  Completions appear automatically as you type
  Press Tab / Shift-Tab to cycle through candidates
  Press Space to accept the current candidate
  Press Esc to toggle between eval and command modes
  Use Up/Down arrows for history navigation (mode switches automatically)
  Use Shift+Up/Shift+Down for history navigation within current mode only
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// inputMode represents the current input mode.
type inputMode int

const (
	modeEval inputMode = iota
	modeCtrl
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	matchStyle      = suggestionStyle.Bold(true)
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
	selectedMatchStyle = selectedStyle.Bold(true)
)

// formatCommand formats the command echo line with prompt and input styled.
func formatCommand(input string) string {
	return promptStyle.Render(evalPrompt) + inputStyle.Render(input)
}

// formatCtrlCommand formats the control command echo line with prompt and
// input styled.
func formatCtrlCommand(input string) string {
	return ctrlPromptStyle.Render(ctrlPrompt) + inputStyle.Render(input)
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc      func() context.Context
	input        textinput.Model
	doc          any
	env          query.Env
	path         string
	logger       log.Logger
	history      *History
	historyIdx   int
	matches      fuzzy.Matches // current fuzzy match results
	candidates   []string      // backing candidate list
	wordStart    int           // byte offset of current word start
	wordEnd      int           // byte offset of current word end
	suggIdx      int           // selected candidate index
	tabActive    bool          // whether user is tab-cycling
	preTabText   string        // input text before tab-cycling began
	preTabCursor int           // cursor position before tab-cycling began
	width        int           // terminal width for ellipsization
	quitting     bool
	mode         inputMode
	evalText     string
	evalCursor   int
	ctrlText     string
	ctrlCursor   int
}

// Run starts the REPL on a parsed JSON document. path names the file the
// document was read from, used by the reload command, and may be empty.
// History is kept in cacheDir.
func Run(
	ctx context.Context,
	doc any,
	path string,
	cacheDir string,
	logger log.Logger,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger.TraceContext(
		ctx,
		"repl start",
		slog.String("cache_dir", cacheDir),
		slog.String("source", path),
	)

	history := NewHistory(filepath.Join(cacheDir, baseHistory))
	if err := history.Load(); err != nil {
		logger.WarnContext(ctx, "could not load history", slog.Any("error", err))
	}

	logger.TraceContext(
		ctx,
		"repl history loaded",
		slog.Int("entry_count", history.Len()),
	)

	p := tea.NewProgram(
		newModel(ctx, doc, path, history, logger),
		tea.WithContext(ctx),
	)
	_, err = p.Run()

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	doc any,
	path string,
	history *History,
	logger log.Logger,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		doc:        doc,
		env:        query.NewEnv(doc),
		path:       path,
		logger:     logger,
		history:    history,
		historyIdx: history.Len(),
		suggIdx:    -1,
		width:      defaultWidth,
		mode:       modeEval,
	}
}

// setDocument replaces the document and its query environment.
func (m model) setDocument(doc any) model {
	m.doc = doc
	m.env = query.NewEnv(doc)

	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(evalPrompt) - 2

		return m, nil

	case editDocMsg:
		m = m.setDocument(msg.doc)
		m.logger.TraceContext(m.ctxFunc(), "repl edit complete")

		return m, tea.Println(resultStyle.Render("✔ document updated"))

	case editCancelledMsg:
		return m, tea.Println(hintStyle.Render("edit cancelled"))

	case editDeclinedMsg:
		m.quitting = true

		return m, tea.Quit

	case editErrorMsg:
		return m, tea.Println(errorStyle.Render("error: " + msg.err.Error()))
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch input := m.input.Value(); {
	case m.historyIdx < m.history.Len():
		hint := fmt.Sprintf("%s/%d",
			lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(m.historyIdx+1)),
			m.history.Len())
		b.WriteString(hintStyle.Render(hint))

	case strings.TrimSpace(input) == "":
		hint := "Type an expression or press Esc for commands"
		if m.mode == modeCtrl {
			hint = "Type: " + strings.Join(ctrlCommands, ", ") +
				" (press Esc to return)"
		}

		b.WriteString(hintStyle.Render(hint))

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(m.matches, m.suggIdx, m.tabActive, m.width))
	}

	b.WriteString("\n")

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(
		m.ctxFunc(),
		"repl keypress",
		slog.String("key", msg.String()),
		slog.Int("type", int(msg.Type)),
	)

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		refreshMatches(&m, false)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if !m.tabActive || len(m.matches) == 0 {
			return m.executeInput()
		}
		// Lock in the current tab candidate without executing.
		m.tabActive = false
		refreshMatches(&m, true)

		return m, nil

	case tea.KeyTab:
		return m.cycle(1), nil

	case tea.KeyShiftTab:
		return m.cycle(-1), nil

	case tea.KeyUp:
		return m.historyPrev(), nil

	case tea.KeyDown:
		return m.historyNext(), nil

	case tea.KeyShiftUp:
		return m.historyPrevInMode(), nil

	case tea.KeyShiftDown:
		return m.historyNextInMode(), nil

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			refreshMatches(&m, false)

			return m, nil
		}

		return m.toggleMode(), nil

	case tea.KeyRunes, tea.KeySpace:
		// Space breaks out of tab-cycling, keeping the candidate.
		if m.tabActive && msg.String() == " " {
			m.tabActive = false
		}

		var cmd tea.Cmd

		m.historyIdx = m.history.Len()
		m.input, cmd = m.input.Update(msg)
		refreshMatches(&m, true)

		return m, cmd
	}

	// Any other key (backspace, delete, arrows) edits without auto-confirm.
	var cmd tea.Cmd

	m.tabActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	refreshMatches(&m, false)

	return m, cmd
}

// cycle moves the tab selection by step, wrapping at either end. A single
// candidate is completed and confirmed immediately.
func (m model) cycle(step int) model {
	n := len(m.matches)
	if n == 0 {
		return m
	}

	if n == 1 {
		replaceCurrentWord(&m, m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m
	}

	switch {
	case m.tabActive:
		m.suggIdx = (m.suggIdx + step + n) % n

	default:
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()

		m.suggIdx = 0
		if step < 0 {
			m.suggIdx = n - 1
		}
	}

	replaceCurrentWord(&m, m.matches[m.suggIdx].Str)

	return m
}

// replaceCurrentWord replaces the current word in the input with
// replacement and moves the cursor after it.
func replaceCurrentWord(m *model, replacement string) {
	input := m.input.Value()
	cursor := m.wordStart + len(replacement)

	m.input.SetValue(input[:m.wordStart] + replacement + input[m.wordEnd:])
	m.input.SetCursor(cursor)

	m.wordEnd = cursor
}

// refreshMatches recomputes fuzzy matches for the current input state.
// When autoConfirm is set and the typed word already equals the sole
// candidate, the completion is confirmed.
func refreshMatches(m *model, autoConfirm bool) {
	m.matches, m.candidates, m.wordStart, m.wordEnd = m.computeMatches()

	if !m.tabActive {
		m.suggIdx = -1
	}

	if !autoConfirm || len(m.matches) != 1 {
		return
	}

	if candidate := m.matches[0].Str; m.input.Value()[m.wordStart:m.wordEnd] == candidate {
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil
	}
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.evalText, m.evalCursor = "", 0
	m.ctrlText, m.ctrlCursor = "", 0
	m.input.SetValue("")
	m.matches = nil

	if _, err := m.history.WriteWithMode(input, m.mode); err != nil {
		m.logger.DebugContext(m.ctxFunc(), "history write failed", slog.Any("error", err))
	}

	m.historyIdx = m.history.Len()

	if m.mode == modeCtrl {
		m.logger.TraceContext(m.ctxFunc(), "repl command", slog.String("input", input))

		return m.executeCommand(input)
	}

	m.logger.TraceContext(m.ctxFunc(), "repl eval", slog.String("input", input))

	return m, tea.Sequence(
		tea.Println(formatCommand(input)),
		tea.Println(m.evaluate(input)),
	)
}

// evaluate runs a query against the document and renders the outcome.
func (m model) evaluate(input string) string {
	result, err := query.Eval(m.ctxFunc(), input, m.env)
	if err != nil {
		m.logger.TraceContext(
			m.ctxFunc(),
			"repl eval result",
			slog.String("result_type", "error"),
			slog.String("error", err.Error()),
		)

		out := errorStyle.Render("error: " + err.Error())
		if alt := query.Suggestions(err); len(alt) > 0 {
			out += "\n" + hintStyle.Render("did you mean: "+strings.Join(alt, ", ")+"?")
		}

		return out
	}

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl eval result",
		slog.String("result_type", resultTypeName(result)),
	)

	return resultStyle.Render(formatValue(result))
}

func (m model) executeCommand(input string) (model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	echoCmd := tea.Println(formatCtrlCommand(input))

	cmd, args := parts[0], parts[1:]

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl exec command",
		slog.String("command", cmd),
		slog.Any("args", args),
	)

	switch cmd {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Sequence(echoCmd, tea.Quit)

	case "h", "help":
		return m, tea.Sequence(echoCmd, tea.Println(helpMessage()))

	case "k", "keys":
		out, err := m.listMembers(strings.Join(args, ""))
		if err != nil {
			out = errorStyle.Render("error: " + err.Error())
		}

		return m, tea.Sequence(echoCmd, tea.Println(out))

	case "r", "reload":
		var err error

		m, err = m.reload()
		if err != nil {
			return m, tea.Sequence(echoCmd, tea.Println(errorStyle.Render("error: "+err.Error())))
		}

		return m, tea.Sequence(echoCmd, tea.Println(resultStyle.Render("✔ reloaded "+m.path)))

	case "c", "clear":
		return m, tea.ClearScreen

	case "e", "edit":
		return m, tea.Sequence(echoCmd, m.handleEdit())

	default:
		return m, tea.Println(
			errorStyle.Render("Unknown command: " + cmd + " (try 'help')"),
		)
	}
}

// listMembers renders the members of the value at a dotted path below doc,
// one per line with a short preview.
func (m model) listMembers(path string) (string, error) {
	path = strings.TrimPrefix(strings.TrimPrefix(path, query.DocName), ".")

	v, ok := query.Lookup(m.env[query.DocName], path)
	if !ok {
		return "", ErrNoMember.With(slog.String("path", path))
	}

	var b strings.Builder

	switch v := v.(type) {
	case map[string]any:
		for _, key := range query.Members(v) {
			fmt.Fprintf(&b, "  %s %s\n", key, hintStyle.Render(summary(v[key])))
		}

	case []any:
		for i, e := range v {
			fmt.Fprintf(&b, "  %d %s\n", i, hintStyle.Render(summary(e)))
		}

	default:
		fmt.Fprintf(&b, "  %s\n", summary(v))
	}

	return b.String(), nil
}

// reload parses the source file again and replaces the document.
func (m model) reload() (model, error) {
	if m.path == "" {
		return m, ErrNoSource
	}

	file, err := os.Open(m.path)
	if err != nil {
		return m, err
	}
	defer file.Close()

	doc, err := json.ParseReader(m.ctxFunc(), file, json.WithLogger(m.logger))
	if err != nil {
		return m, err
	}

	return m.setDocument(doc), nil
}

func (m model) handleEdit() tea.Cmd {
	cmd := &editDocCommand{
		doc:     m.doc,
		ctxFunc: m.ctxFunc,
		logger:  m.logger,
	}

	return tea.Exec(cmd, func(err error) tea.Msg {
		switch {
		case errors.Is(err, ErrEditDeclined):
			return editDeclinedMsg{}

		case err != nil:
			return editErrorMsg{err: err}

		case !cmd.edited:
			return editCancelledMsg{}
		}

		return editDocMsg{doc: cmd.newDoc}
	})
}

// recall loads history entry i into the input, switching modes when
// switchMode is set.
func (m model) recall(i int, switchMode bool) (model, bool) {
	entry, err := m.history.GetEntry(i)
	if err != nil {
		return m, false
	}

	if m.mode != entry.Mode {
		if !switchMode {
			return m, false
		}

		m = m.switchToMode(entry.Mode)
	}

	m.historyIdx = i
	m.input.SetValue(entry.Line)
	m.input.SetCursor(len(entry.Line))
	refreshMatches(&m, false)

	return m, true
}

// clearHistoryView leaves history navigation with an empty input.
func (m model) clearHistoryView() model {
	m.historyIdx = m.history.Len()
	m.input.SetValue("")
	refreshMatches(&m, false)

	return m
}

func (m model) historyPrev() model {
	if m.historyIdx > 0 {
		m, _ = m.recall(m.historyIdx-1, true)
	}

	return m
}

func (m model) historyNext() model {
	if m.historyIdx < m.history.Len()-1 {
		m, _ = m.recall(m.historyIdx+1, true)

		return m
	}

	return m.clearHistoryView()
}

func (m model) historyPrevInMode() model {
	for i := m.historyIdx - 1; i >= 0; i-- {
		if next, ok := m.recall(i, false); ok {
			return next
		}
	}

	return m
}

func (m model) historyNextInMode() model {
	for i := m.historyIdx + 1; i < m.history.Len(); i++ {
		if next, ok := m.recall(i, false); ok {
			return next
		}
	}

	if m.historyIdx < m.history.Len() {
		return m.clearHistoryView()
	}

	return m
}

// toggleMode switches between eval and control modes.
func (m model) toggleMode() model {
	if m.mode == modeEval {
		return m.switchToMode(modeCtrl)
	}

	return m.switchToMode(modeEval)
}

// switchToMode switches to mode, saving the input of the current mode and
// restoring the input last seen in the target mode.
func (m model) switchToMode(mode inputMode) model {
	if m.mode == modeEval {
		m.evalText, m.evalCursor = m.input.Value(), m.input.Position()
	} else {
		m.ctrlText, m.ctrlCursor = m.input.Value(), m.input.Position()
	}

	m.mode = mode
	if mode == modeEval {
		m.input.Prompt = promptStyle.Render(evalPrompt)
		m.input.SetValue(m.evalText)
		m.input.SetCursor(m.evalCursor)
	} else {
		m.input.Prompt = ctrlPromptStyle.Render(ctrlPrompt)
		m.input.SetValue(m.ctrlText)
		m.input.SetCursor(m.ctrlCursor)
	}

	refreshMatches(&m, false)

	return m
}

func resultTypeName(value any) string {
	if value == nil {
		return "nil"
	}

	return fmt.Sprintf("%T", value)
}
