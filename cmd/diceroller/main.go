package main

import (
	"context"
	"os"

	"github.com/mobinyousefi-cs/dice-roller/internal/common/clock"
	"github.com/mobinyousefi-cs/dice-roller/internal/common/uuid"
	"github.com/mobinyousefi-cs/dice-roller/internal/config"
	"github.com/mobinyousefi-cs/dice-roller/internal/dice"
	clihandler "github.com/mobinyousefi-cs/dice-roller/internal/handlers/cli"
	"github.com/mobinyousefi-cs/dice-roller/internal/handlers/gui"
	"github.com/mobinyousefi-cs/dice-roller/internal/services/roll"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	// base application info
	app.Name = "dice-roller"
	app.Usage = "dice rolling simulator, graphical by default"
	app.Version = "1.0.0"

	// flags
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "cli",
			Usage: "run in CLI mode (no GUI)",
		},
		cli.IntFlag{
			Name:  "num, n",
			Value: 1,
			Usage: "number of dice to roll (CLI)",
		},
		cli.BoolFlag{
			Name:  "sum",
			Usage: "print the sum (CLI)",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for reproducibility",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load die configuration from `FILE`",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	}

	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	log.SetFormatter(&log.TextFormatter{DisableColors: true})
	if cfg.Debug || c.Bool("debug") {
		log.SetLevel(log.DebugLevel)
	}

	die, err := cfg.Die()
	if err != nil {
		return err
	}

	if c.Bool("cli") {
		return runCLI(c, die)
	}

	return gui.Run(&gui.Config{
		Die:            die,
		ServiceFactory: newRollService,
	})
}

func runCLI(c *cli.Context, die *dice.Die) error {
	// IsSet keeps --seed 0 deterministic instead of falling back to entropy
	svc, err := newRollService(die, c.Int64("seed"), c.IsSet("seed"))
	if err != nil {
		return err
	}

	handler, err := clihandler.New(&clihandler.Config{
		RollService: svc,
		Output:      os.Stdout,
	})
	if err != nil {
		return err
	}

	return handler.Run(context.Background(), &clihandler.RunInput{
		Num:     c.Int("num"),
		SumMode: c.Bool("sum"),
	})
}

// newRollService wires a seeded roller into a roll service; the GUI
// also uses it as its per-seed service factory
func newRollService(die *dice.Die, seed int64, seeded bool) (roll.Service, error) {
	roller := dice.New(&dice.Config{
		Die:    die,
		Seed:   seed,
		Seeded: seeded,
	})

	return roll.New(&roll.Config{
		DiceRoller:    roller,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
}
