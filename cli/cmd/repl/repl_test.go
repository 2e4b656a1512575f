package repl

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/pcomb/json"
	"github.com/ardnew/pcomb/log"
	"github.com/ardnew/pcomb/query"
)

const testSource = `{
	"name": "pcomb",
	"count": 3,
	"size": 1.5,
	"items": [{"name": "a", "price": 5}, {"name": "b", "price": 12}],
	"server": {"host": "localhost", "port": 8080}
}`

func testDoc(t *testing.T) any {
	t.Helper()

	doc, err := json.Parse(context.Background(), testSource)
	if err != nil {
		t.Fatal(err)
	}

	return doc
}

func newTestModel(t *testing.T, path string) model {
	t.Helper()

	history := NewHistory(filepath.Join(t.TempDir(), baseHistory))

	return newModel(context.Background(), testDoc(t), path, history, log.Logger{})
}

func TestModel_Evaluate(t *testing.T) {
	m := newTestModel(t, "")

	tests := []struct {
		input string
		want  string
	}{
		{"doc.name", `"pcomb"`},
		{"doc.server.port + 1", "8081"},
		{"map(doc.items, .price)", "[5,12]"},
		{"dc.name", "did you mean: doc?"},
		{"int(doc.name)", "error:"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := m.evaluate(tt.input); !strings.Contains(got, tt.want) {
				t.Errorf("evaluate(%q) = %q, want it to contain %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestModel_ListMembers(t *testing.T) {
	m := newTestModel(t, "")

	tests := []struct {
		path string
		want []string
	}{
		{"", []string{"count", "items", "name", "server", "size", "{ 2 members }"}},
		{"doc", []string{"count", "server"}},
		{"doc.server", []string{"host", `"localhost"`, "port", "8080"}},
		{"items", []string{"0", "1", "{ 2 members }"}},
		{"items.0.name", []string{`"a"`}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			out, err := m.listMembers(tt.path)
			if err != nil {
				t.Fatal(err)
			}

			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("listMembers(%q) = %q, missing %q", tt.path, out, w)
				}
			}
		})
	}

	if _, err := m.listMembers("doc.nope"); !errors.Is(err, ErrNoMember) {
		t.Errorf("error = %v, want ErrNoMember", err)
	}
}

func TestModel_Completion(t *testing.T) {
	m := newTestModel(t, "")

	m.input.SetValue("doc.serv")
	m.input.SetCursor(8)
	refreshMatches(&m, false)

	if len(m.matches) != 1 || m.matches[0].Str != "server" {
		t.Fatalf("matches = %v, want [server]", m.matches)
	}

	m = m.cycle(1)
	if got := m.input.Value(); got != "doc.server" {
		t.Errorf("input = %q, want doc.server", got)
	}

	m.input.SetValue("doc.s")
	m.input.SetCursor(5)
	refreshMatches(&m, false)

	m = m.cycle(1)
	if !m.tabActive || m.suggIdx != 0 {
		t.Fatalf("tab state = %v, %d", m.tabActive, m.suggIdx)
	}

	if got, want := m.input.Value(), "doc."+m.matches[0].Str; got != want {
		t.Errorf("input = %q, want %q", got, want)
	}

	last := len(m.matches) - 1

	m = m.cycle(-1)
	if m.suggIdx != last {
		t.Errorf("suggIdx = %d, want %d", m.suggIdx, last)
	}

	if got, want := m.input.Value(), "doc."+m.matches[last].Str; got != want {
		t.Errorf("input = %q, want %q", got, want)
	}
}

func TestModel_CtrlCompletion(t *testing.T) {
	m := newTestModel(t, "")
	m = m.toggleMode()

	m.input.SetValue("rel")
	m.input.SetCursor(3)
	refreshMatches(&m, false)

	if len(m.matches) != 1 || m.matches[0].Str != "reload" {
		t.Errorf("matches = %v, want [reload]", m.matches)
	}

	m.input.SetValue("keys ser")
	m.input.SetCursor(8)
	refreshMatches(&m, false)

	if len(m.matches) != 0 {
		t.Errorf("argument completed as command: %v", m.matches)
	}
}

func TestModel_ToggleMode(t *testing.T) {
	m := newTestModel(t, "")

	m.input.SetValue("doc.na")
	m = m.toggleMode()

	if m.mode != modeCtrl || m.input.Value() != "" {
		t.Fatalf("mode = %v, input = %q", m.mode, m.input.Value())
	}

	m.input.SetValue("help")
	m = m.toggleMode()

	if m.mode != modeEval || m.input.Value() != "doc.na" {
		t.Errorf("mode = %v, input = %q", m.mode, m.input.Value())
	}

	m = m.toggleMode()
	if m.input.Value() != "help" {
		t.Errorf("ctrl input = %q, want help", m.input.Value())
	}
}

func TestModel_History(t *testing.T) {
	m := newTestModel(t, "")

	for _, e := range []HistoryEntry{
		{"doc.name", modeEval},
		{"keys", modeCtrl},
		{"len(doc)", modeEval},
	} {
		if _, err := m.history.WriteWithMode(e.Line, e.Mode); err != nil {
			t.Fatal(err)
		}
	}

	m.historyIdx = m.history.Len()

	m = m.historyPrev()
	if m.input.Value() != "len(doc)" || m.mode != modeEval {
		t.Fatalf("prev = %q (%v)", m.input.Value(), m.mode)
	}

	m = m.historyPrev()
	if m.input.Value() != "keys" || m.mode != modeCtrl {
		t.Fatalf("prev = %q (%v)", m.input.Value(), m.mode)
	}

	m = m.switchToMode(modeEval)
	m.historyIdx = m.history.Len()

	m = m.historyPrevInMode()
	m = m.historyPrevInMode()

	if m.input.Value() != "doc.name" || m.mode != modeEval {
		t.Fatalf("prev in mode = %q (%v)", m.input.Value(), m.mode)
	}

	m = m.historyNextInMode()
	if m.input.Value() != "len(doc)" {
		t.Fatalf("next in mode = %q", m.input.Value())
	}

	m = m.historyNext()
	if m.input.Value() != "" || m.historyIdx != m.history.Len() {
		t.Errorf("next past end = %q at %d", m.input.Value(), m.historyIdx)
	}
}

func TestModel_ExecuteInput(t *testing.T) {
	m := newTestModel(t, "")

	m.input.SetValue("  doc.count  ")

	m, cmd := m.executeInput()
	if cmd == nil {
		t.Fatal("no command returned for evaluation")
	}

	if m.input.Value() != "" || m.history.Len() != 1 {
		t.Errorf("input = %q, history = %d", m.input.Value(), m.history.Len())
	}

	m = m.toggleMode()
	m.input.SetValue("quit")

	m, _ = m.executeInput()
	if !m.quitting {
		t.Error("quit did not stop the REPL")
	}

	if m.View() != "" {
		t.Error("view not empty after quitting")
	}
}

func TestModel_Reload(t *testing.T) {
	if _, err := newTestModel(t, "").reload(); !errors.Is(err, ErrNoSource) {
		t.Errorf("error = %v, want ErrNoSource", err)
	}

	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`{"version": 2}`), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := newTestModel(t, path).reload()
	if err != nil {
		t.Fatal(err)
	}

	if got, _ := query.Lookup(m.env[query.DocName], "version"); got != 2 {
		t.Errorf("version = %#v, want 2", got)
	}

	if err := os.WriteFile(path, []byte(`{"version": }`), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := m.reload(); !errors.Is(err, json.ErrSyntax) {
		t.Errorf("error = %v, want ErrSyntax", err)
	}
}

func TestEditDocCommand(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "editor.sh")

	err := os.WriteFile(script, []byte("#!/bin/sh\nprintf '{\"edited\": true}' > \"$1\"\n"), 0o700)
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("EDITOR", script)

	var out strings.Builder

	cmd := &editDocCommand{
		doc:     testDoc(t),
		ctxFunc: context.Background,
	}
	cmd.SetStdin(strings.NewReader(""))
	cmd.SetStdout(&out)
	cmd.SetStderr(&out)

	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}

	if !cmd.edited {
		t.Fatal("edit not recorded")
	}

	obj, ok := cmd.newDoc.(*json.Object)
	if !ok {
		t.Fatalf("newDoc = %#v", cmd.newDoc)
	}

	if v, _ := obj.Get("edited"); v != true {
		t.Errorf("edited = %v", v)
	}
}

func TestEditDocCommand_Declined(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "editor.sh")

	err := os.WriteFile(script, []byte("#!/bin/sh\nprintf '{' > \"$1\"\n"), 0o700)
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("EDITOR", script)

	var out strings.Builder

	cmd := &editDocCommand{doc: testDoc(t), ctxFunc: context.Background}
	cmd.SetStdin(strings.NewReader("n\n"))
	cmd.SetStdout(&out)
	cmd.SetStderr(&out)

	if err := cmd.Run(); !errors.Is(err, ErrEditDeclined) {
		t.Errorf("error = %v, want ErrEditDeclined", err)
	}

	if !strings.Contains(out.String(), "Re-edit?") {
		t.Errorf("no prompt in output %q", out.String())
	}
}
