package shell

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/brettbedarf/dirforest/internal/util"
	"github.com/peterh/liner"
)

// RunInteractive reads commands from the terminal with line editing, history
// and command-name completion until EOF, Ctrl-C or an exit command.
func (s *Shell) RunInteractive() error {
	logger := util.GetLogger("Shell.RunInteractive")

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabPrints)
	line.SetCompleter(s.Complete)

	s.loadHistory(line)
	defer s.saveHistory(line)

	for {
		text, err := line.Prompt(s.cfg.Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				break
			}
			logger.Error().Err(err).Msg("Failed to read line")
			s.finish()
			return err
		}
		if strings.TrimSpace(text) != "" {
			line.AppendHistory(text)
		}
		if s.Exec(text) {
			break
		}
	}
	s.finish()
	return nil
}

// Complete returns command names starting with the typed prefix
func (s *Shell) Complete(prefix string) (c []string) {
	lower := strings.ToLower(prefix)
	for _, name := range s.registry.Names() {
		if strings.HasPrefix(name, lower) {
			c = append(c, name)
		}
	}
	return
}

func (s *Shell) loadHistory(line *liner.State) {
	if s.cfg.HistoryPath == "" {
		return
	}
	if f, err := os.Open(s.cfg.HistoryPath); err == nil {
		// nolint:errcheck
		line.ReadHistory(f)
		f.Close()
	}
}

func (s *Shell) saveHistory(line *liner.State) {
	logger := util.GetLogger("Shell.saveHistory")
	if s.cfg.HistoryPath == "" {
		return
	}
	f, err := os.Create(s.cfg.HistoryPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", s.cfg.HistoryPath).Msg("Failed to create history file")
		return
	}
	defer f.Close()
	if _, err := line.WriteHistory(f); err != nil {
		logger.Warn().Err(err).Str("path", s.cfg.HistoryPath).Msg("Failed to write history file")
	}
}
