// Runs scenarios against the seq containers and prints them after every step.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/wsxiaoys/terminal/color"
)

func main() {
	scenarioPath := flag.String("scenario", "", "YAML scenario file (defaults to the built-in one)")
	noColor := flag.Bool("no-color", false, "disable colored headers")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	config := Configure().Scenario(*scenarioPath).Color(!*noColor)

	if err := play(config, logger); err != nil {
		logger.Error().Err(err).Msg("scenario failed")
		os.Exit(1)
	}
}

// Runs every run of the configured scenario. Failing steps are logged and
// skipped, only an unreadable scenario is an error.
func play(config *Configuration, logger zerolog.Logger) error {
	s, err := loadScenario(config.scenario)
	if err != nil {
		return err
	}

	for i, r := range s.Runs {
		runLogger := logger.With().Int("run", i).Str("container", r.Container).Logger()
		title := r.Title
		if title == "" {
			title = r.Container
		}
		header(config, title)

		sq := containerKinds[r.Container](r.values())
		fmt.Fprintf(config.out, "initial: %s\n", sq)
		fmt.Fprintf(config.out, "size: %d\n", sq.Size())

		for j, st := range r.Steps {
			op, err := parseOperation(st)
			if err != nil {
				runLogger.Warn().Err(err).Int("step", j).Msg("skipping step")
				continue
			}
			label := st.Label
			if label == "" {
				label = op.String()
			}

			if op.kind == opMove {
				moved := sq.move()
				fmt.Fprintf(config.out, "%s: %s\n", label, moved)
				fmt.Fprintf(config.out, "source size after move: %d\n", sq.Size())
				sq = moved
				continue
			}

			if op.kind == opIterate {
				fmt.Fprintf(config.out, "%s: %s\n", label, sq.walk())
				continue
			}

			if err := sq.apply(op); err != nil {
				runLogger.Warn().Err(err).Int("step", j).Str("op", op.String()).Msg("operation failed")
				continue
			}
			fmt.Fprintf(config.out, "%s: %s\n", label, sq)
		}
	}
	return nil
}

func header(config *Configuration, title string) {
	line := "=== " + title + " ==="
	if config.color {
		line = color.Colorize("g") + line + color.Colorize("|")
	}
	fmt.Fprintln(config.out, line)
}
