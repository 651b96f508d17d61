package main

import (
	"os"

	"github.com/NickyBoy89/javagrader/dot"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	graphOutputPath string

	graphCmd = &cobra.Command{
		Use:   "graph FILE",
		Short: "Write the inheritance graph of a Java file in Graphviz's dot format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			facts, err := extractFacts(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if graphOutputPath != "" {
				file, err := os.Create(graphOutputPath)
				if err != nil {
					return errors.Wrap(err, "creating output file")
				}
				defer file.Close()
				out = file
			}

			if err := dot.Hierarchy(facts, out).Write(); err != nil {
				return errors.Wrap(err, "writing graph")
			}
			log.WithFields(log.Fields{
				"file":    facts.Name,
				"classes": len(facts.Classes),
			}).Debug("Wrote inheritance graph")
			return nil
		},
	}
)

func init() {
	graphCmd.Flags().StringVarP(&graphOutputPath, "output", "o", "", "File to write the graph to, defaults to standard output")
}
