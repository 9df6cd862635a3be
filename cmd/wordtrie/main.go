// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main runs the wordtrie dictionary as an IPC server or an
interactive prompt.

wordtrie reads a plain text corpus, counts every word in a 26-way trie, and
answers two kinds of queries: prefix completion ranked by frequency, and
spelling correction within edit distance two.

# Usage

Serve msgpack requests on stdin/stdout using Context.txt:

	wordtrie

Use another corpus, a directory of *.txt files, and debug logs:

	wordtrie -corpus /path/to/books -d

Try it by hand:

	wordtrie -c -limit 10

# Configuration

A config.toml is created under ~/.config/wordtrie on first run:

	[index]
	max_word_length = 100
	max_suggestions = 200
	max_candidates = 2000
	max_distance = 2

	[cache]
	max_prefixes = 1024

	[server]
	max_limit = 64
	default_limit = 10
	max_query = 60

	[cli]
	default_limit = 24 # 0 prints every suggestion
	no_filter = false

Flags given on the command line win over the file.

# Prompt

In CLI mode each line is completed and, when it is not a dictionary word,
spell-checked. "!add <word>" inserts a word, "!stats" prints counters and
"exit" quits.

See package server for the IPC protocol.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordtrie/internal/cli"
	"github.com/bastiangx/wordtrie/internal/logger"
	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/config"
	"github.com/bastiangx/wordtrie/pkg/dictionary"
	"github.com/bastiangx/wordtrie/pkg/server"
	"github.com/bastiangx/wordtrie/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	AppName = "wordtrie"
	gh      = "https://github.com/bastiangx/wordtrie"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	corpusPath := flag.String("corpus", "Context.txt", "Corpus file, or directory of *.txt files")
	configPath := flag.String("config", "", "Path to a config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive prompt instead of the IPC server")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of suggestions to print in CLI mode (0 for all)")
	noFilter := flag.Bool("no-filter", defaultConfig.CLI.NoFilter, "Accept CLI input holding characters other than letters")
	distance := flag.Int("distance", defaultConfig.Index.MaxDistance, "Maximum edit distance for corrections (1 or 2)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.Setup(*debugMode)

	appConfig, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config: %s", config.GetActiveConfigPath(usedPath))
	applyFlags(appConfig, limit, noFilter, distance)

	completer := suggest.NewCompleter(appConfig.Limits(), appConfig.Cache.MaxPrefixes)

	resolved, err := utils.ResolveCorpusPath(*corpusPath)
	if err != nil {
		log.Fatalf("Failed to find corpus: %v", err)
	}
	stats, err := dictionary.NewLoader(completer, appConfig.Index.MaxWordLength).Load(resolved)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}
	log.Debug("Corpus loaded",
		"files", stats.Files,
		"words", stats.Words,
		"distinct", completer.Stats()["totalWords"],
		"took", stats.Duration)

	if *cliMode {
		fmt.Printf("Trie built successfully with %s total words.\n\n", utils.FormatWithCommas(stats.Words))
		handler := cli.NewInputHandler(completer, os.Stdin, os.Stdout, appConfig.CLI.DefaultLimit, appConfig.CLI.NoFilter)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	showStartupInfo(resolved, completer.Stats())
	srv := server.NewServer(completer, appConfig, os.Stdin, os.Stdout)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(cfg *config.Config, limit *int, noFilter *bool, distance *int) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "limit":
			cfg.CLI.DefaultLimit = *limit
		case "no-filter":
			cfg.CLI.NoFilter = *noFilter
		case "distance":
			cfg.Index.MaxDistance = *distance
		}
	})
	if n := cfg.Validate(); n > 0 {
		log.Warnf("%d flag or config values were out of range and reset", n)
	}
}

func printVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ " + AppName + " ] completions and spelling fixes from a word trie")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo writes a short banner to stderr.
func showStartupInfo(corpus string, stats map[string]int) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)
	defer log.SetLevel(currentLevel)

	fmt.Fprintln(os.Stderr, "==========")
	fmt.Fprintln(os.Stderr, " wordtrie ")
	fmt.Fprintln(os.Stderr, "==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("corpus: ( %s )", corpus)
	log.Infof("words: %s distinct", utils.FormatWithCommas(stats["totalWords"]))
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "==========")
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to exit")
}
