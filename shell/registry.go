package shell

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// AnyArgs as MaxArgs lifts the upper bound; extra arguments are ignored
const AnyArgs = -1

// Command is one shell verb. Args bounds are inclusive.
type Command struct {
	Name    string
	Usage   string // e.g. "move <src> <dest>"
	Help    string
	MinArgs int
	MaxArgs int
	Run     func(s *Shell, args []string) (quit bool)
}

// acceptsArgs reports whether n arguments are allowed
func (c *Command) acceptsArgs(n int) bool {
	return n >= c.MinArgs && (c.MaxArgs == AnyArgs || n <= c.MaxArgs)
}

// Registry maps lower-case command names to commands
type Registry struct {
	mu       sync.RWMutex
	commands map[string]*Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register adds cmd under its name and any aliases. The first registration of
// a name wins.
func (r *Registry) Register(cmd *Command, aliases ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range append([]string{cmd.Name}, aliases...) {
		key := strings.ToLower(name)
		if _, exists := r.commands[key]; !exists {
			r.commands[key] = cmd
		}
	}
}

// Get looks up a command case-insensitively
func (r *Registry) Get(name string) (*Command, error) {
	r.mu.RLock()
	cmd, ok := r.commands[strings.ToLower(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no command %q", name)
	}
	return cmd, nil
}

// Commands returns each distinct command once, sorted by name
func (r *Registry) Commands() []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[*Command]bool, len(r.commands))
	cmds := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		if !seen[cmd] {
			seen[cmd] = true
			cmds = append(cmds, cmd)
		}
	}
	slices.SortFunc(cmds, func(a, b *Command) int {
		return strings.Compare(a.Name, b.Name)
	})
	return cmds
}

// Names returns every registered name including aliases, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
