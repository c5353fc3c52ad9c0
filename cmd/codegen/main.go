package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/lumenui/lumen/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityCountKey = "count"
	outPathKey    = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed WatchN helpers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Highest helper arity to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outPathKey,
				Usage: "Output file path",
				Value: "reactive/watchn.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for watch helpers started")
	defer func() {
		log.Printf("Codegen for watch helpers finished in %v", time.Since(start))
	}()

	count := cmd.Uint(arityCountKey)
	out := cmd.String(outPathKey)

	contents := templates.WatchNGen(int(count))
	return os.WriteFile(out, []byte(contents), 0644)
}
