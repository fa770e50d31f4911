package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/ewilliams-labs/moodtunes/internal/core/domain"
)

func recommendCommand() *cli.Command {
	return &cli.Command{
		Name:  "recommend",
		Usage: "run one session from the command line and record it",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "nickname", Value: domain.DefaultNickname},
			&cli.StringFlag{Name: "city", Required: true},
			&cli.StringFlag{Name: "mood", Required: true},
			&cli.IntFlag{Name: "age", Value: domain.DefaultAge},
			&cli.StringFlag{Name: "language", Value: "english"},
			&cli.StringFlag{Name: "year-range"},
		},
		Action: func(c *cli.Context) error {
			a, err := loadApp(c)
			if err != nil {
				return err
			}
			defer a.close()

			req := domain.NewMoodRequest(
				c.String("nickname"),
				c.String("city"),
				c.String("mood"),
				c.Int("age"),
				c.String("language"),
				c.String("year-range"),
			)
			printRecommendation(c.App.Writer, a.recommender.Recommend(c.Context, req))
			return nil
		},
	}
}

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "print the session history",
		Action: func(c *cli.Context) error {
			a, err := loadApp(c)
			if err != nil {
				return err
			}
			defer a.close()

			entries, err := a.recommender.History(c.Context)
			if err != nil {
				return fmt.Errorf("error loading history: %w", err)
			}
			printHistory(c.App.Writer, entries)
			return nil
		},
	}
}

func printRecommendation(w io.Writer, rec domain.Recommendation) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "nickname\t%s\n", rec.Request.Nickname)
	fmt.Fprintf(tw, "weather\t%s\n", rec.Weather.Display)
	fmt.Fprintf(tw, "mood\t%s\n", rec.Request.Mood)
	fmt.Fprintf(tw, "age\t%d\n", rec.Request.Age)
	fmt.Fprintf(tw, "language\t%s\n", rec.Request.Language)
	fmt.Fprintf(tw, "category\t%s\n", rec.Category)
	fmt.Fprintf(tw, "playlist id\t%s\n", rec.Playlist.DisplayID())
	if rec.Playlist.Found() {
		fmt.Fprintf(tw, "playlist\t%s\n", rec.Playlist.URL)
		fmt.Fprintf(tw, "search used\t%s\n", rec.Playlist.Query)
	}
	tw.Flush()
}

func printHistory(w io.Writer, entries []domain.SessionLogEntry) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIMESTAMP\tUSER\tQUERY\tPLAYLIST")
	for _, e := range entries {
		query := e.QueryText()
		if query == "" {
			query = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Timestamp, e.User, query, e.Playlist)
	}
	tw.Flush()
}
