// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

// Package main is the interactive console front end for the recommender.
//
// It loads the same catalog and engine as the HTTP server but drives them
// from a terminal menu: list popular titles, search by substring, or type
// an exact title, then show both recommendation methods side by side.
//
// Configuration follows the server (Koanf v2: defaults, config.yaml, env),
// so DATA_DIR selects the dataset here too.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rasecfaria/FinalProject/internal/catalog"
	"github.com/rasecfaria/FinalProject/internal/config"
	"github.com/rasecfaria/FinalProject/internal/logging"
	"github.com/rasecfaria/FinalProject/internal/recommend"
	"github.com/rasecfaria/FinalProject/internal/recommend/algorithms"
)

const recommendationCount = 10

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Keep the terminal readable: console format, warnings and above only,
	// unless the user asked for more via LOG_LEVEL.
	level := cfg.Logging.Level
	if level == "" || level == "info" {
		level = "warn"
	}
	logging.Init(logging.Config{Level: level, Format: "console"})

	cat, err := catalog.Load(cfg.Data, logging.WithComponent("catalog"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalog")
	}

	engine := recommend.NewEngine(cat, cfg.Recommend, logging.WithComponent("recommend"))

	fmt.Println("Interactive Movie Recommender")
	fmt.Println(strings.Repeat("=", 40))
	if !engine.ContentAvailable() {
		fmt.Println("Note: tags/details tables missing - content-based method disabled.")
	}

	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		fmt.Println("\nOptions:")
		fmt.Println("1. List popular movies")
		fmt.Println("2. Search for a movie")
		fmt.Println("3. Enter an exact title")
		fmt.Println("4. Quit")
		fmt.Print("\nChoose an option (1-4): ")

		if !scanner.Scan() {
			return
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			pickFromPopular(ctx, engine, scanner, cfg.Recommend.PopularK)
		case "2":
			pickFromSearch(ctx, engine, scanner)
		case "3":
			fmt.Print("Enter the exact title: ")
			if !scanner.Scan() {
				return
			}
			showRecommendations(ctx, engine, strings.TrimSpace(scanner.Text()))
		case "4":
			fmt.Println("Thanks for using the movie recommender!")
			return
		default:
			fmt.Println("Invalid option, please choose again.")
		}
	}
}

// pickFromPopular lists the most-rated titles and recommends for the one
// the user selects by number.
func pickFromPopular(ctx context.Context, engine *recommend.Engine, scanner *bufio.Scanner, n int) {
	popular := engine.ListPopular(n)
	if len(popular) == 0 {
		fmt.Println("No rated movies in the catalog.")
		return
	}

	fmt.Printf("\nTop %d most popular movies:\n", len(popular))
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tRATINGS")
	for i, p := range popular {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", i+1, p.Title, p.RatingCount)
	}
	tw.Flush()

	if title, ok := pickIndex(scanner, len(popular), func(i int) string { return popular[i].Title }); ok {
		showRecommendations(ctx, engine, title)
	}
}

// pickFromSearch searches titles by substring and recommends for the one
// the user selects by number.
func pickFromSearch(ctx context.Context, engine *recommend.Engine, scanner *bufio.Scanner) {
	fmt.Print("Enter part of the title: ")
	if !scanner.Scan() {
		return
	}
	term := strings.TrimSpace(scanner.Text())

	results := engine.Search(term)
	if len(results) == 0 {
		fmt.Printf("No movies found containing %q\n", term)
		return
	}

	fmt.Printf("\nMovies matching %q (%d results):\n", term, len(results))
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tGENRES")
	for i, m := range results {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, m.Title, m.Genres)
	}
	tw.Flush()

	if title, ok := pickIndex(scanner, len(results), func(i int) string { return results[i].Title }); ok {
		showRecommendations(ctx, engine, title)
	}
}

// pickIndex prompts for a 1-based index into a list of size n. Entering 0
// returns to the menu.
func pickIndex(scanner *bufio.Scanner, n int, title func(int) string) (string, bool) {
	fmt.Print("\nPick a movie number for recommendations (or 0 to go back): ")
	if !scanner.Scan() {
		return "", false
	}
	idx, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		fmt.Println("Invalid input.")
		return "", false
	}
	if idx <= 0 || idx > n {
		return "", false
	}
	return title(idx - 1), true
}

// showRecommendations runs both methods for a reference title and prints
// the top results of each.
func showRecommendations(ctx context.Context, engine *recommend.Engine, title string) {
	if title == "" {
		return
	}

	fmt.Printf("\nRecommendations for: %s\n", title)
	fmt.Println(strings.Repeat("-", 40))

	fmt.Println("\n1. COLLABORATIVE FILTERING:")
	collab, err := engine.RecommendCollaborative(ctx, title, recommendationCount)
	printScored(collab, err)

	if !engine.ContentAvailable() {
		return
	}

	fmt.Println("\n2. CONTENT-BASED (TF-IDF over genres):")
	content, err := engine.RecommendContent(ctx, title, recommendationCount)
	printScored(content, err)
}

func printScored(scored []algorithms.ScoredTitle, err error) {
	switch {
	case errors.Is(err, recommend.ErrTitleNotFound):
		fmt.Println("Title not found in the catalog. Check the exact spelling, e.g. \"Toy Story (1995)\".")
		return
	case errors.Is(err, recommend.ErrNoRecommendations):
		fmt.Println("No recommendations available for this title.")
		return
	case errors.Is(err, recommend.ErrContentUnavailable):
		fmt.Println("Content-based method unavailable for this catalog.")
		return
	case err != nil:
		fmt.Printf("Recommendation failed: %v\n", err)
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tSIMILARITY")
	for i, s := range scored {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\n", i+1, s.Title, s.Score)
	}
	tw.Flush()
}
