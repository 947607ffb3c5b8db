package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/foreverfine77/ComplexAnalyzer/src/analysis"
	"github.com/foreverfine77/ComplexAnalyzer/src/cnum"
	"github.com/foreverfine77/ComplexAnalyzer/src/render"
)

const (
	historyFile = ".canalyze_history"
	promptMain  = "z> "
)

const replHelp = `REPL commands:
  :stats          Print statistics for the accumulated values
  :list           Print the accumulated values in input order
  :plot <file>    Render the values as a scatter chart (PNG, or SVG by extension)
  :clear          Discard the accumulated input
  :help           Show this help
  :quit           Exit the REPL
Anything else is treated as input text and parsed for complex literals.`

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively accumulate values and inspect them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}
}

func runRepl() error {
	fmt.Printf("canalyze %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.\n", version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	// The session state is the raw text itself; every query re-runs the
	// pipeline from scratch so :clear and re-parsing stay trivially correct.
	var input strings.Builder
	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(trimmed, ":") {
			if done := replCommand(trimmed, &input); done {
				return nil
			}
			continue
		}

		before := len(cnum.SplitAndParse(input.String()))
		input.WriteString(line)
		input.WriteByte('\n')
		total := len(cnum.SplitAndParse(input.String()))
		fmt.Printf("parsed %d value(s) from line, %d total\n", total-before, total)
	}
}

// replCommand dispatches one ":" command against the session input and
// reports whether the session should end.
func replCommand(cmdLine string, input *strings.Builder) bool {
	fields := strings.Fields(cmdLine)
	switch strings.ToLower(fields[0]) {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Println(replHelp)
	case ":clear":
		input.Reset()
		fmt.Println("input cleared")
	case ":list":
		pts := cnum.SplitAndParse(input.String())
		if len(pts) == 0 {
			fmt.Println(noValuesMsg)
			break
		}
		for i, p := range pts {
			fmt.Printf("%3d: %s\n", i+1, p)
		}
	case ":stats":
		pts, sum := analysis.SummarizeText(input.String())
		if len(pts) == 0 {
			fmt.Println(noValuesMsg)
			break
		}
		printSummary(os.Stdout, sum)
	case ":plot":
		if len(fields) < 2 {
			fmt.Println("usage: :plot <file>")
			break
		}
		if err := replPlot(fields[1], input.String()); err != nil {
			fmt.Fprintln(os.Stderr, "plot:", err)
		}
	default:
		fmt.Println("unknown command. Type :help for commands.")
	}
	return false
}

func replPlot(path, text string) error {
	pts := cnum.SplitAndParse(text)
	if len(pts) == 0 {
		fmt.Println(noValuesMsg + "; nothing to plot")
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	opts := render.Options{ShowMean: true, ShowLegend: true}
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		err = render.WriteSVG(f, pts, opts)
	} else {
		err = render.WritePNG(f, pts, opts)
	}
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d points)\n", path, len(pts))
	return nil
}
