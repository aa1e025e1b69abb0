// Package shell is the line-oriented command interpreter in front of the
// forest engine. It handles command dispatch, argument-count validation and
// multiline output buffering; the engine itself never writes output.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/brettbedarf/dirforest"
	"github.com/brettbedarf/dirforest/config"
	"github.com/brettbedarf/dirforest/internal/util"
)

// Shell dispatches command lines to an Operator
type Shell struct {
	op       dirforest.Operator
	out      *Output
	cfg      *config.Config
	registry *Registry
}

// New creates a Shell. out should be the same Output the operator reports
// notices to. A nil cfg uses the defaults.
func New(op dirforest.Operator, out *Output, cfg *config.Config) *Shell {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	s := &Shell{op: op, out: out, cfg: cfg, registry: NewRegistry()}
	registerBuiltins(s.registry)
	return s
}

// Registry exposes the command set so callers can add commands
func (s *Shell) Registry() *Registry {
	return s.registry
}

// Exec runs one command line and reports whether the shell should stop
func (s *Shell) Exec(line string) (quit bool) {
	logger := util.GetLogger("Shell.Exec")

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	name, args := fields[0], fields[1:]
	logger.Trace().Str("command", name).Strs("args", args).Msg("Exec called")

	if name == MultilineToggle {
		s.out.SetMultiline(!s.out.Multiline())
		return false
	}

	cmd, err := s.registry.Get(name)
	if err != nil {
		logger.Debug().Err(err).Msg("Unknown command")
		if !s.out.Multiline() {
			s.out.Error(MsgInvalidCommand)
		}
		return false
	}
	if !cmd.acceptsArgs(len(args)) {
		s.out.Error(MsgInvalidArgs)
		return false
	}
	return cmd.Run(s, args)
}

// RunScript executes every line of r until EOF or an exit command
func (s *Shell) RunScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if s.Exec(scanner.Text()) {
			break
		}
	}
	s.finish()
	return scanner.Err()
}

// Banner returns the welcome text printed when the shell starts
func (s *Shell) Banner() string {
	var b strings.Builder
	b.WriteString("Welcome to dirforest!\n")
	b.WriteString("Type 'help' to see the available commands.\n")
	b.WriteString("Type 'exit' to exit.\n")
	fmt.Fprintf(&b, "Type %s to enter multiline mode. Type %s again to leave it.", MultilineToggle, MultilineToggle)
	return b.String()
}

// HelpText lists every command with its usage
func (s *Shell) HelpText() string {
	var b strings.Builder
	b.WriteString("Available commands:")
	for _, cmd := range s.registry.Commands() {
		fmt.Fprintf(&b, "\n  %-20s - %s", cmd.Usage, cmd.Help)
	}
	fmt.Fprintf(&b, "\n  %-20s - %s", MultilineToggle, "Toggle multiline mode (queue output until toggled off).")
	return b.String()
}

// report prints a failed operation's message immediately
func (s *Shell) report(err error) {
	if err != nil {
		s.out.Error(err.Error())
	}
}

// finish flushes anything still queued and says goodbye
func (s *Shell) finish() {
	s.out.SetMultiline(false)
	s.out.Println(MsgExiting)
}
