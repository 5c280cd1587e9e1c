package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/peterkuimelis/cardbattle/internal/console"
	"github.com/peterkuimelis/cardbattle/internal/content"
	"github.com/peterkuimelis/cardbattle/internal/game"
	"github.com/peterkuimelis/cardbattle/internal/log"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "play":
		runPlay(os.Args[2:])
	case "cards":
		runCards(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  cardbattle play [--difficulty D] [--seed N] [--name NAME] [--rules FILE] [--content FILE] [--log FILE] [--no-color]")
	fmt.Println("  cardbattle cards [--n N] [--seed N] [--content FILE]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  play    Play a match against the computer in the terminal")
	fmt.Println("  cards   Print a randomly generated set of cards")
}

func runPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	difficulty := fs.String("difficulty", "", "computer difficulty: Easy, Medium or Hard (asked if empty)")
	seed := fs.Int64("seed", 0, "RNG seed for reproducible matches (0 for random)")
	name := fs.String("name", "Human", "your player name")
	rulesFile := fs.String("rules", "", "path to rules YAML file (built-in defaults if empty)")
	contentFile := fs.String("content", "", "path to card content YAML file (built-in tables if empty)")
	logFile := fs.String("log", "", "write the event log to this file (\"-\" for stdout)")
	noColor := fs.Bool("no-color", false, "disable colored output")
	fs.Parse(args)

	if err := play(*difficulty, *seed, *name, *rulesFile, *contentFile, *logFile, *noColor); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(difficultyName string, seed int64, name, rulesFile, contentFile, logFile string, noColor bool) error {
	con := console.New(os.Stdin, os.Stdout)
	if noColor {
		con.DisableColor()
	}

	rules, err := game.LoadRules(rulesFile)
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}
	tables, err := content.LoadTables(contentFile)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	var difficulty game.Difficulty
	if difficultyName == "" {
		difficulty, err = con.AskDifficulty()
	} else {
		difficulty, err = game.ParseDifficulty(difficultyName)
	}
	if err != nil {
		return err
	}

	var logger log.EventLogger
	if logFile != "" {
		var w io.Writer = os.Stdout
		if logFile != "-" {
			f, err := os.Create(logFile)
			if err != nil {
				return fmt.Errorf("open log: %w", err)
			}
			defer f.Close()
			w = f
		}
		logger = log.NewTextLogger(w)
	}

	gen := content.NewGenerator(tables, game.NewRNG(seed))
	match, err := game.NewMatch(game.MatchConfig{
		HumanName:  name,
		Difficulty: difficulty,
		Deck:       gen.GenerateDeck(rules.DeckSize),
		Rules:      rules,
		Logger:     logger,
		Seed:       seed,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	for {
		if err := match.Start(); err != nil {
			return err
		}
		if _, err := match.Run(ctx, con); err != nil {
			return err
		}
		con.ShowResult(match)

		again, err := con.AskPlayAgain()
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func runCards(args []string) {
	fs := flag.NewFlagSet("cards", flag.ExitOnError)
	n := fs.Int("n", 10, "number of cards to generate")
	seed := fs.Int64("seed", 0, "RNG seed (0 for random)")
	contentFile := fs.String("content", "", "path to card content YAML file (built-in tables if empty)")
	fs.Parse(args)

	tables, err := content.LoadTables(*contentFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	gen := content.NewGenerator(tables, game.NewRNG(*seed))
	for i, card := range gen.GenerateDeck(*n) {
		fmt.Printf("%3d. %s\n", i+1, card.DisplayString())
	}
}
