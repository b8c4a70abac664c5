package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/yonster100/brainrot/pkg/export"
	"github.com/yonster100/brainrot/pkg/loader"
	"github.com/yonster100/brainrot/pkg/model"
	"github.com/yonster100/brainrot/pkg/query"
	"github.com/yonster100/brainrot/pkg/stats"
	"github.com/yonster100/brainrot/pkg/ui"
	"github.com/yonster100/brainrot/pkg/version"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	dataPath := flag.String("data", "", "Load shows from a JSONL file instead of the bundled catalog")
	exportFile := flag.String("export-md", "", "Export the catalog to a Markdown file (e.g., report.md)")
	sortFlag := flag.String("sort", "top", "Initial sort for the Browse tab: top, worst, name")
	robotShows := flag.Bool("robot-shows", false, "Output the full show catalog as JSON for AI agents")
	robotStats := flag.Bool("robot-stats", false, "Output catalog statistics as JSON for AI agents")
	flag.Parse()

	if *help {
		fmt.Println("Usage: brt [options]")
		fmt.Println("\nA TUI browser for the kids' TV brainrot catalog.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("brt %s\n", version.Version)
		os.Exit(0)
	}

	initialSort, err := parseSort(*sortFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var shows []model.ShowRecord
	if *dataPath != "" {
		shows, err = loader.LoadFile(*dataPath)
	} else {
		shows, err = loader.LoadEmbedded()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	if *robotShows {
		out := struct {
			GeneratedAt string             `json:"generated_at"`
			Count       int                `json:"count"`
			Shows       []model.ShowRecord `json:"shows"`
		}{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Count:       len(shows),
			Shows:       query.SortShows(shows, initialSort),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding shows: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *robotStats {
		out := struct {
			GeneratedAt string        `json:"generated_at"`
			Stats       stats.Summary `json:"stats"`
		}{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Stats:       stats.Summarize(shows),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding stats: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *exportFile != "" {
		if err := export.WriteMarkdown(shows, *exportFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting markdown: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported %d shows to %s\n", len(shows), *exportFile)
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal.")
		fmt.Fprintln(os.Stderr, "Use --robot-shows / --robot-stats for machine-readable output.")
		os.Exit(1)
	}

	p := tea.NewProgram(ui.NewModel(shows, initialSort), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func parseSort(s string) (query.SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "top", "top-rated":
		return query.SortTopRated, nil
	case "worst", "worst-rated":
		return query.SortWorstRated, nil
	case "name", "alpha":
		return query.SortByName, nil
	}
	return query.SortTopRated, fmt.Errorf("unknown sort %q (expected top, worst, or name)", s)
}
