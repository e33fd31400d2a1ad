package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	padelelo "github.com/hedon954/padel-elo"
	"github.com/hedon954/padel-elo/config"
	"github.com/hedon954/padel-elo/example"
	"github.com/hedon954/padel-elo/report"
)

type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	settler *padelelo.Settler
}

func main() {
	if err := newCLIApp().Run(os.Args); err != nil {
		var outcomeErr *padelelo.InvalidOutcomeError
		if errors.As(err, &outcomeErr) {
			log.Fatalf("a match needs a winner: %v", err)
		}
		log.Fatal(err)
	}
}

func newCLIApp() *cli.App {
	a := &app{}
	return &cli.App{
		Name:  "padelelo",
		Usage: "rate padel league matches and americana rounds",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the configuration file"},
			&cli.StringFlag{Name: "log-level", Usage: "override the configured log level"},
			&cli.StringFlag{Name: "xlsx", Usage: "also write the results to this workbook"},
		},
		Before: a.setup,
		Commands: []*cli.Command{
			a.matchCommand(),
			a.ladderCommand(),
			a.simulateCommand(),
		},
	}
}

func (a *app) setup(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	a.cfg = cfg
	a.logger = cfg.Log.NewLogger()

	a.settler, err = padelelo.NewSettler(cfg.Match, cfg.Ladder, padelelo.WithLogger(a.logger))
	return err
}

func (a *app) matchCommand() *cli.Command {
	return &cli.Command{
		Name:  "match",
		Usage: "settle a fixed-team match",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "a", Required: true, Usage: "team A ratings, e.g. 1500,1600"},
			&cli.StringFlag{Name: "b", Required: true, Usage: "team B ratings, e.g. 1550,1650"},
			&cli.StringFlag{Name: "score", Required: true, Usage: "games won by A and B, e.g. 6,3"},
		},
		Action: func(c *cli.Context) error {
			ra, err := parseInts("a", c.String("a"))
			if err != nil {
				return err
			}
			rb, err := parseInts("b", c.String("b"))
			if err != nil {
				return err
			}
			score, err := parseInts("score", c.String("score"))
			if err != nil {
				return err
			}
			if len(score) != 2 {
				return errors.Errorf("--score needs two numbers, got %d", len(score))
			}

			teamA := newPair("A", playersFor("a", ra)...)
			teamB := newPair("B", playersFor("b", rb)...)
			st, err := a.settler.SettleMatch("match", teamA, teamB, padelelo.MatchScore{A: score[0], B: score[1]})
			if err != nil {
				return err
			}
			return a.render(c, st)
		},
	}
}

func (a *app) ladderCommand() *cli.Command {
	return &cli.Command{
		Name:  "ladder",
		Usage: "settle an americana round described in a YAML file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Required: true, Usage: "round file"},
		},
		Action: func(c *cli.Context) error {
			rf, err := loadRound(c.String("input"))
			if err != nil {
				return err
			}
			pairs, moves := rf.event()
			st, err := a.settler.SettleLadder(c.String("input"), example.Pairs(pairs...), moves)
			if err != nil {
				return err
			}
			return a.render(c, st)
		},
	}
}

func (a *app) simulateCommand() *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "settle random matches and one americana round",
		Flags: []cli.Flag{
			&cli.Uint64Flag{Name: "seed", Usage: "generator seed, random when 0"},
			&cli.IntFlag{Name: "matches", Value: 4},
			&cli.IntFlag{Name: "pairs", Value: 6, Usage: "pairs in the americana round"},
		},
		Action: func(c *cli.Context) error {
			var gen *example.Generator
			if seed := c.Uint64("seed"); seed != 0 {
				gen = example.NewGenerator(seed)
			} else {
				gen = example.NewGenerator()
			}
			a.logger.Info("simulation", slog.Uint64("seed", gen.Seed()))

			var events []padelelo.Event
			for i := 0; i < c.Int("matches"); i++ {
				teams := gen.Pairs(2)
				events = append(events, padelelo.NewMatchEvent(teams[0], teams[1], gen.MatchScore()))
			}
			if n := c.Int("pairs"); n > 0 {
				pairs := gen.Pairs(n)
				events = append(events, padelelo.NewLadderEvent(
					example.Pairs(pairs...), gen.Movements(n, a.settler.LadderConfig().NumLanes)))
			}

			settlements, err := a.runAll(c.Context, events)
			if err != nil {
				return err
			}
			return a.render(c, settlements...)
		},
	}
}

// runAll pushes events through a Runner and waits for every result.
func (a *app) runAll(ctx context.Context, events []padelelo.Event) ([]*padelelo.Settlement, error) {
	results := make(chan padelelo.Result, len(events))
	runner := padelelo.NewRunner(a.settler, results, a.cfg.Runner.TickInterval)
	runner.AddEvents(events...)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go runner.Run(ctx)
	defer runner.Stop()

	settlements := make([]*padelelo.Settlement, 0, len(events))
	for range events {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case res := <-results:
			if res.Err != nil {
				return nil, errors.Wrapf(res.Err, "event %s", res.Event.ID())
			}
			settlements = append(settlements, res.Settlement)
		}
	}
	return settlements, nil
}

func (a *app) render(c *cli.Context, settlements ...*padelelo.Settlement) error {
	w := c.App.Writer
	if err := report.WriteTable(w, settlements...); err != nil {
		return err
	}
	sum, err := report.Summary(settlements...)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d players, mean delta %.2f, stddev %.2f\n", sum.Players, sum.Mean, sum.StdDev)

	if path := c.String("xlsx"); path != "" {
		return report.WriteXLSX(path, settlements...)
	}
	return nil
}

func playersFor(prefix string, ratings []int) []*example.Player {
	res := make([]*example.Player, 0, len(ratings))
	for i, r := range ratings {
		id := fmt.Sprintf("%s%d", prefix, i+1)
		res = append(res, example.NewPlayer(id, id, r))
	}
	return res
}
