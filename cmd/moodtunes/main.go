package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := cli.NewApp()
	cliApp.Name = "moodtunes"
	cliApp.Usage = "Playlist recommendations from mood, weather, age and language."
	cliApp.Flags = []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "env-file",
			Usage: "dotenv file(s) to load before reading the environment",
		},
	}
	cliApp.Commands = []*cli.Command{
		serveCommand(),
		recommendCommand(),
		historyCommand(),
	}
	cliApp.DefaultCommand = "serve"

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
