package main

import (
	"io"

	"github.com/NickyBoy89/javagrader/grader"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const stdinName = "-"

var (
	checkOutput outputFlags

	checkCmd = &cobra.Command{
		Use:   "check FILE...",
		Short: "Check that each Java file implements the Animal, Mammal, Dog hierarchy",
		Long: `Check that each Java file declares the classes Animal, Mammal and Dog, that
Mammal extends Animal and Dog extends Mammal, that Dog overrides speak and
Mammal declares move, and that main calls speak or move.

Use - to read a single file from standard input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
)

func init() {
	checkOutput.register(checkCmd.Flags())
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, findings, err := checkOutput.resolve(cmd.Flags(), cfg)
	if err != nil {
		return err
	}

	g := grader.New(grader.WithLogger(log.WithField("command", "check")))

	var results []grader.Result
	var errs []error
	for _, path := range args {
		result, err := checkPath(cmd, g, path)
		if err != nil {
			log.WithField("file", path).Error(err)
			errs = append(errs, err)
			continue
		}
		results = append(results, result)
	}

	if err := printResults(cmd.OutOrStdout(), format, findings, results); err != nil {
		return err
	}

	if len(errs) > 0 {
		return errors.Wrapf(errs[0], "%d of %d files could not be graded, first", len(errs), len(args))
	}
	for _, result := range results {
		if !result.Passed {
			return errChecksFailed
		}
	}
	return nil
}

func checkPath(cmd *cobra.Command, g *grader.Grader, path string) (grader.Result, error) {
	if path != stdinName {
		return g.Check(path)
	}

	source, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return grader.Result{File: path}, errors.Wrap(err, "reading standard input")
	}
	return g.CheckSource("<stdin>", source)
}
