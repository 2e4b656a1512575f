package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/pcomb/json"
	"github.com/ardnew/pcomb/log"
)

const (
	defaultEditor = "vi"
	editIndent    = 2
)

// editDocCommand implements [tea.ExecCommand] for the edit-parse-retry loop.
// It writes the document as JSON to a temp file, opens the user's editor,
// and parses the result. On a syntax error the user is prompted to re-edit;
// declining exits the program.
type editDocCommand struct {
	doc     any
	ctxFunc func() context.Context
	newDoc  any
	edited  bool
	logger  log.Logger
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// SetStdin sets the stdin reader for the command.
func (c *editDocCommand) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout sets the stdout writer for the command.
func (c *editDocCommand) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr sets the stderr writer for the command.
func (c *editDocCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the edit-parse-retry loop. An emptied file cancels the edit.
// If the user declines to re-edit after a syntax error, Run returns
// [ErrEditDeclined].
func (c *editDocCommand) Run() error {
	ctx := c.ctxFunc()

	content, err := json.FormatJSON(c.doc, editIndent)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(os.TempDir(), "pcomb-repl-*.json")
	if err != nil {
		return err
	}

	tmpPath := f.Name()

	defer os.Remove(tmpPath)

	if err := f.Close(); err != nil {
		return err
	}

	for {
		if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
			return err
		}

		data, err := runEditor(ctx, c.stdin, c.stdout, c.stderr, tmpPath)
		if err != nil {
			return err
		}

		if strings.TrimSpace(string(data)) == "" {
			return nil
		}

		doc, parseErr := json.Parse(ctx, string(data), json.WithLogger(c.logger))
		c.logger.TraceContext(
			ctx,
			"editor parse attempt",
			slog.Int("content_length", len(data)),
			slog.Bool("success", parseErr == nil),
		)

		if parseErr == nil {
			c.newDoc, c.edited = doc, true

			return nil
		}

		if line, col, ok := json.Position(parseErr); ok {
			fmt.Fprintf(c.stderr, "\n%s:%d:%d: %s\n", tmpPath, line, col, parseErr)
		} else {
			fmt.Fprintf(c.stderr, "\nParse error: %s\n", parseErr)
		}

		fmt.Fprint(c.stdout, "Re-edit? [Y/n] ")

		scanner := bufio.NewScanner(c.stdin)
		if !scanner.Scan() {
			return ErrEditDeclined
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "n", "no":
			return ErrEditDeclined
		}

		content = data
	}
}

// runEditor opens path in $EDITOR (which may carry arguments) and returns
// the edited content.
func runEditor(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	path string,
) ([]byte, error) {
	args := strings.Fields(os.Getenv("EDITOR"))
	if len(args) == 0 {
		args = []string{defaultEditor}
	}

	cmd := exec.CommandContext(ctx, args[0], append(args[1:], path)...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return nil, err
	}

	return os.ReadFile(path)
}
