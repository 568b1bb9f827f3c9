package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/nff/analysis"
	"github.com/npillmayer/nff/grammar"
	"github.com/pterm/pterm"
)

// Session is an interactive session. Users enter rule lines, which are
// collected, and commands starting with ':', e.g. ":show" to analyse the
// rules entered so far.
type Session struct {
	lines []string
	cfg   Config
	repl  *readline.Instance
	last  *analysis.Analysis // result of the most recent :show
}

// interactive starts a session, optionally pre-loading a grammar file.
func interactive(opts *options) int {
	repl, err := readline.New(opts.cfg.Prompt)
	if err != nil {
		tracer().Errorf(err.Error())
		return exitInternal
	}
	defer repl.Close()
	s := &Session{cfg: opts.cfg, repl: repl}
	pterm.Info.Println("Welcome to NFF")
	if opts.file != "" {
		if err := s.load(opts.file); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	s.REPL()
	return exitOK
}

// REPL reads lines until the user quits or input ends.
func (s *Session) REPL() {
	for {
		line, err := s.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		quit, err := s.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

const sessionHelp = `Enter rules as "A -> b C", or one of the commands
  :show          analyse the rules entered so far
  :rules         list the rules entered so far
  :load <file>   add the rules of a grammar file
  :reset         forget all rules
  :help          show this text
  :quit          leave the session`

// Eval evaluates a single line of input. It returns true if the session
// should end.
func (s *Session) Eval(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	if !strings.HasPrefix(line, ":") {
		return false, s.addRule(line)
	}
	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return false, fmt.Errorf("missing command after ':'")
	}
	switch cmd, args := fields[0], fields[1:]; cmd {
	case "quit", "q":
		return true, nil
	case "help", "h":
		pterm.Println(sessionHelp)
	case "reset":
		s.lines = s.lines[:0]
		s.last = nil
		pterm.Info.Println("all rules removed")
	case "rules":
		rt, err := s.ruleTable()
		if err != nil {
			return false, err
		}
		printRules(rt)
	case "show":
		rt, err := s.ruleTable()
		if err != nil {
			return false, err
		}
		s.last = analysis.Analyse(rt)
		printResults(s.last, s.cfg.Sorted)
	case "load":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: :load <file>")
		}
		return false, s.load(args[0])
	default:
		return false, fmt.Errorf("unknown command :%s, try :help", cmd)
	}
	return false, nil
}

// addRule checks the syntax of a single rule line and collects it.
// Non-terminals without rules are fine at this point, as their rules may
// follow later.
func (s *Session) addRule(line string) error {
	_, err := grammar.LoadString("input", line)
	if err != nil && !errors.Is(err, grammar.ErrUndefinedNonterminal) {
		return err
	}
	s.lines = append(s.lines, line)
	tracer().Debugf("%d rules collected", len(s.lines))
	return nil
}

// load adds the rules of a grammar file. The file has to be a complete
// grammar by itself.
func (s *Session) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open grammar file: %w", err)
	}
	defer f.Close()
	rt, err := grammar.Load(path, f)
	if err != nil {
		return err
	}
	rt.EachRule(func(r *grammar.Rule) {
		s.lines = append(s.lines, r.Source())
	})
	pterm.Info.Println(fmt.Sprintf("loaded %d rules from %s", rt.RuleCount(), path))
	return nil
}

func (s *Session) ruleTable() (*grammar.RuleTable, error) {
	if len(s.lines) == 0 {
		return nil, fmt.Errorf("no rules entered yet")
	}
	return grammar.LoadString("session", strings.Join(s.lines, "\n"))
}
