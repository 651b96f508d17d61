package main

import (
	"io"

	"github.com/NickyBoy89/javagrader/parsing"
	"github.com/NickyBoy89/javagrader/symbol"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	factsOutput outputFlags

	factsCmd = &cobra.Command{
		Use:   "facts FILE",
		Short: "Print the types, methods and calls found in a Java file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _, err := factsOutput.resolve(cmd.Flags(), cfg)
			if err != nil {
				return err
			}

			facts, err := extractFacts(cmd, args[0])
			if err != nil {
				return err
			}
			return printFacts(cmd.OutOrStdout(), format, facts)
		},
	}
)

func init() {
	factsOutput.register(factsCmd.Flags())
}

// extractFacts parses the file at path, or standard input for -, and collects
// its facts
func extractFacts(cmd *cobra.Command, path string) (*symbol.FileScope, error) {
	var file *parsing.SourceFile
	if path == stdinName {
		source, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Wrap(err, "reading standard input")
		}
		file = &parsing.SourceFile{Name: "<stdin>", Source: source}
	} else {
		loaded, err := parsing.Load(path)
		if err != nil {
			return nil, err
		}
		file = loaded
	}

	if err := file.ParseAST(); err != nil {
		return nil, err
	}
	defer file.Close()

	return symbol.ExtractFacts(file.Name, file.Ast, file.Source), nil
}
