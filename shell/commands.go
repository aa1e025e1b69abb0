package shell

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/brettbedarf/dirforest/forest"
	"gopkg.in/yaml.v3"
)

// MultilineToggle switches multiline mode on and off
const MultilineToggle = "```"

// Fixed shell messages
const (
	MsgInvalidArgs    = "Invalid number of arguments"
	MsgInvalidCommand = "Invalid command"
	MsgExiting        = "Exiting..."
)

// registerBuiltins installs the standard command set
func registerBuiltins(r *Registry) {
	r.Register(&Command{
		Name: "create", Usage: "create <path>", Help: "Create a directory at the specified path.",
		MinArgs: 1, MaxArgs: 1,
		Run: func(s *Shell, args []string) bool {
			s.report(s.op.Create(args[0], forest.Interactive()))
			return false
		},
	})
	r.Register(&Command{
		Name: "list", Usage: "list", Help: "List all directories and subdirectories.",
		MaxArgs: AnyArgs,
		Run: func(s *Shell, _ []string) bool {
			s.out.Emit(s.op.List(), true)
			return false
		},
	})
	r.Register(&Command{
		Name: "move", Usage: "move <src> <dest>", Help: "Move a directory from src to dest.",
		MinArgs: 2, MaxArgs: 2,
		Run: func(s *Shell, args []string) bool {
			s.report(s.op.Move(args[0], args[1], forest.Interactive()))
			return false
		},
	})
	r.Register(&Command{
		Name: "delete", Usage: "delete <path>", Help: "Delete a directory at the specified path.",
		MinArgs: 1, MaxArgs: 1,
		Run: func(s *Shell, args []string) bool {
			s.report(s.op.Delete(args[0], forest.Interactive()))
			return false
		},
	})
	r.Register(&Command{
		Name: "dump", Usage: "dump [yaml|json]", Help: "Print the whole forest as YAML or JSON.",
		MinArgs: 0, MaxArgs: 1,
		Run: func(s *Shell, args []string) bool {
			format := s.cfg.DumpFormat
			if len(args) == 1 {
				format = strings.ToLower(args[0])
			}
			out, err := encodeSnapshot(s.op.Forest().Snapshot(), format)
			if err != nil {
				s.out.Error(err.Error())
				return false
			}
			s.out.Emit(out, true)
			return false
		},
	})
	r.Register(&Command{
		Name: "help", Usage: "help", Help: "Display this help message.",
		MaxArgs: AnyArgs,
		Run: func(s *Shell, _ []string) bool {
			s.out.Println(s.HelpText())
			return false
		},
	})
	r.Register(&Command{
		Name: "exit", Usage: "exit", Help: "Exit the shell.",
		MaxArgs: AnyArgs,
		Run: func(*Shell, []string) bool {
			return true
		},
	}, "quit")
}

func encodeSnapshot(snap []forest.Snapshot, format string) (string, error) {
	switch format {
	case "yaml", "yml", "":
		if len(snap) == 0 {
			return "[]", nil
		}
		b, err := yaml.Marshal(snap)
		if err != nil {
			return "", fmt.Errorf("failed to encode forest: %w", err)
		}
		return strings.TrimRight(string(b), "\n"), nil
	case "json":
		if snap == nil {
			snap = []forest.Snapshot{}
		}
		b, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode forest: %w", err)
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unknown dump format: %s", format)
	}
}
