// Package session implements the interactive REPL: one constructor union
// is declared up front, then each line adds a branch pattern and the
// session reports, incrementally, whether the branch is redundant against
// what came before and whether the accumulated branches are exhaustive.
package session

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/patcheck/exhaustive/internal/exhaustive"
	"github.com/patcheck/exhaustive/internal/pattern"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// Session holds one REPL's accumulated state: the union being matched
// against and the branches entered so far.
type Session struct {
	union     pattern.Union
	tagByName map[string]pattern.TagId
	matrix    pattern.Matrix
	history   []string
}

// New builds a session over union, whose alternatives are addressed by
// name in branch lines.
func New(union pattern.Union) *Session {
	tagByName := make(map[string]pattern.TagId, len(union.Alternatives))
	for _, c := range union.Alternatives {
		tagByName[c.Name.Name] = c.TagID
	}
	return &Session{union: union, tagByName: tagByName}
}

// Start runs the read-eval-print loop against in/out until the user quits
// or in is exhausted. Mirrors the historyFile + liner.Liner shape of an
// ordinary line-editing REPL: load history, read lines, append to history
// on exit.
func (s *Session) Start(in io.Reader, out io.Writer) error {
	if f, ok := in.(*os.File); ok && f == os.Stdin {
		return s.startInteractive(out)
	}
	return s.startScripted(in, out)
}

func (s *Session) startInteractive(out io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyFile := filepath.Join(os.TempDir(), ".patcheck_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintln(out, bold("patcheck")+dim(" — one branch per line, :help for commands"))
	for {
		text, err := line.Prompt(s.prompt())
		if err != nil { // io.EOF or Ctrl-D/Ctrl-C
			return nil
		}
		line.AppendHistory(text)
		if done := s.eval(text, out); done {
			return nil
		}
	}
}

func (s *Session) startScripted(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fmt.Fprint(out, s.prompt())
		fmt.Fprintln(out, scanner.Text())
		if done := s.eval(scanner.Text(), out); done {
			return nil
		}
	}
	return scanner.Err()
}

func (s *Session) prompt() string {
	return fmt.Sprintf("patcheck[%d]> ", len(s.matrix))
}

// eval handles one line of input, reporting its done status (true once the
// user has asked to quit).
func (s *Session) eval(text string, out io.Writer) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	s.history = append(s.history, text)

	switch text {
	case ":quit", ":exit", ":q":
		return true
	case ":reset":
		s.matrix = nil
		fmt.Fprintln(out, dim("branches cleared"))
		return false
	case ":help":
		s.printHelp(out)
		return false
	case ":status":
		s.printStatus(out)
		return false
	}

	p, err := parsePattern(text, s.tagByName, s.union)
	if err != nil {
		fmt.Fprintln(out, red("parse error:"), err)
		return false
	}

	branch := pattern.Row{p}
	if exhaustive.IsUseful(s.matrix, branch) {
		fmt.Fprintln(out, green("ok")+dim("    — reachable"))
	} else {
		fmt.Fprintln(out, yellow("redundant")+dim(" — already covered by an earlier branch"))
	}
	s.matrix = append(s.matrix, branch)
	s.printStatus(out)
	return false
}

func (s *Session) printStatus(out io.Writer) {
	witnesses := exhaustive.IsExhaustive(s.matrix, 1)
	if len(witnesses) == 0 {
		fmt.Fprintln(out, cyan("exhaustive"))
		return
	}
	fmt.Fprintln(out, yellow(fmt.Sprintf("incomplete, %d case(s) uncovered:", len(witnesses))))
	for _, w := range witnesses {
		fmt.Fprintln(out, "  "+Render(w[0]))
	}
}

func (s *Session) printHelp(out io.Writer) {
	fmt.Fprintln(out, bold("commands:"))
	fmt.Fprintln(out, "  <pattern>     add a branch, e.g. True, Some(_), Some(None), []")
	fmt.Fprintln(out, "  :status       reprint exhaustiveness status")
	fmt.Fprintln(out, "  :reset        clear all branches")
	fmt.Fprintln(out, "  :help         this message")
	fmt.Fprintln(out, "  :quit         exit")
}

// Render prints a pattern back in roughly the session's own input
// syntax: used for displaying witnesses both in the REPL and from the
// check subcommand.
func Render(p pattern.Pattern) string {
	switch v := p.(type) {
	case pattern.Anything:
		return "_"
	case pattern.LiteralPattern:
		switch v.Value.Kind {
		case pattern.LitInt:
			n := int64(0)
			for i := 7; i >= 0; i-- {
				n = n<<8 | int64(v.Value.Int[i])
			}
			return strconv.FormatInt(n, 10)
		case pattern.LitStr:
			return strconv.Quote(v.Value.Str)
		default:
			return "<lit>"
		}
	case pattern.CtorPattern:
		name := ctorName(v.Union, v.TagID)
		if len(v.Args) == 0 {
			return name
		}
		parts := make([]string, len(v.Args))
		for i, a := range v.Args {
			parts[i] = Render(a)
		}
		return name + "(" + strings.Join(parts, ", ") + ")"
	case pattern.ListPattern:
		parts := make([]string, len(v.Args))
		for i, a := range v.Args {
			parts[i] = Render(a)
		}
		if v.Arity.Kind == pattern.ArityOpenSlice {
			return "[" + strings.Join(parts, ", ") + ", ..]"
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "?"
	}
}

func ctorName(u pattern.Union, tag pattern.TagId) string {
	for _, c := range u.Alternatives {
		if c.TagID == tag {
			return c.Name.Name
		}
	}
	return "?"
}
