// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordfix spell checker as an interactive CLI or a
msgpack IPC server.

wordfix loads a whitespace-delimited word list into a prefix tree once at
startup. Each query is looked up; unknown words get corrections made of every
dictionary word one insertion, deletion, substitution or adjacent swap away.
When no such word exists, every word sharing a known prefix with the query is
offered instead.

# Usage

Check words interactively against a word list:

	wordfix -c -dict /usr/share/dict/words

Serve msgpack requests over stdin/stdout:

	wordfix -dict words.txt

# Configuration

Settings live in a TOML file, created with defaults on first run:

	[dict]
	path = "words.txt"
	backend = "trie"
	cache_size = 1024

	[server]
	max_limit = 64
	max_word_len = 60

	[cli]
	default_limit = 40

Flags override the file.

# Command Line Flags

	-dict string
	    Word list to load (default from config)
	-config string
	    Path to a config.toml
	-backend string
	    Dictionary backend: trie or patricia
	-limit int
	    Suggestions shown per word in CLI mode
	-d  Enable debug logging
	-c  Run the interactive CLI instead of the IPC server
	-version
	    Show version
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordfix/internal/cli"
	"github.com/bastiangx/wordfix/pkg/config"
	"github.com/bastiangx/wordfix/pkg/dictionary"
	"github.com/bastiangx/wordfix/pkg/server"
	"github.com/bastiangx/wordfix/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	AppName = "wordfix"
	gh      = "https://github.com/bastiangx/wordfix"
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

// main only wires packages together and picks the mode.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to config.toml")
	dictPath := flag.String("dict", "", "Word list to load (default from config)")
	backend := flag.String("backend", "", "Dictionary backend: trie or patricia (default from config)")
	limit := flag.Int("limit", 0, "Suggestions shown per word in CLI mode (default from config)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive CLI")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, usedPath := config.LoadConfigWithPriority(*configPath)
	log.Debugf("Using config: (%s)", usedPath)
	applyFlags(cfg, *dictPath, *backend, *limit)

	lex, err := dictionary.New(cfg.Dict.Backend)
	if err != nil {
		log.Fatalf("Failed to init dictionary: %v", err)
	}

	if _, err := dictionary.Load(cfg.Dict.Path, lex); err != nil {
		if errors.Is(err, dictionary.ErrSourceUnavailable) {
			log.Fatalf("Error opening file: %s", cfg.Dict.Path)
		}
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	log.Debug("Dictionary loaded", "backend", cfg.Dict.Backend, "words", lex.Stats().Words)

	corrector := suggest.NewCorrector(lex, cfg.Dict.CacheSize)

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(corrector, os.Stdin, os.Stdout, cfg.CLI.DefaultLimit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(corrector, cfg.Server, os.Stdin, os.Stdout)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// applyFlags lets non-zero flags override the loaded config.
func applyFlags(cfg *config.Config, dictPath, backend string, limit int) {
	if dictPath != "" {
		cfg.Dict.Path = dictPath
	}
	if backend != "" {
		cfg.Dict.Backend = backend
	}
	if limit > 0 {
		cfg.CLI.DefaultLimit = limit
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ WordFix ] finds words and fixes typos")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
