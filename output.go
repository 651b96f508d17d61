package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/NickyBoy89/javagrader/config"
	"github.com/NickyBoy89/javagrader/grader"
	"github.com/NickyBoy89/javagrader/symbol"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// outputFlags are shared by every command that prints results
type outputFlags struct {
	format   string
	findings bool
}

func (o *outputFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(&o.format, "format", "f", "", "Output format: text, json or yaml (overrides the config file)")
	flags.BoolVar(&o.findings, "findings", false, "Also print what each check found")
}

// resolve merges the flags with the loaded config
func (o *outputFlags) resolve(flags *pflag.FlagSet, cfg *config.Config) (string, bool, error) {
	format := cfg.Output.Format
	if flags.Changed("format") {
		format = o.format
	}
	findings := cfg.Output.Findings || o.findings
	return format, findings, config.ValidateFormat(format)
}

func encode(w io.Writer, format string, value any) error {
	switch format {
	case config.FormatJSON:
		formatted, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding json")
		}
		_, err = fmt.Fprintln(w, string(formatted))
		return err
	case config.FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return encoder.Close()
	}
	return errors.Errorf("format %q can't encode values", format)
}

func printResults(w io.Writer, format string, findings bool, results []grader.Result) error {
	if format != config.FormatText {
		return encode(w, format, results)
	}

	for _, result := range results {
		verdict := "FAIL"
		if result.Passed {
			verdict = "PASS"
		}
		fmt.Fprintf(w, "%s %s\n", verdict, result.File)
		if findings {
			for _, finding := range result.Findings {
				fmt.Fprintf(w, "  + %s\n", finding)
			}
		}
		for _, diagnostic := range result.Diagnostics {
			fmt.Fprintf(w, "  - %s\n", diagnostic)
		}
	}
	return nil
}

func printFacts(w io.Writer, format string, facts *symbol.FileScope) error {
	if format != config.FormatText {
		return encode(w, format, facts)
	}

	fmt.Fprintf(w, "file %s\n", facts.Name)
	if facts.Package != "" {
		fmt.Fprintf(w, "package %s\n", facts.Package)
	}
	for _, path := range facts.Imports {
		fmt.Fprintf(w, "import %s\n", path)
	}
	for _, class := range facts.Classes {
		fmt.Fprintf(w, "%d: %s\n", class.Line, class)
	}
	for _, method := range facts.Methods {
		fmt.Fprintf(w, "%d: method %s\n", method.Line, method)
	}
	for _, call := range facts.Calls {
		fmt.Fprintf(w, "%d: call %s\n", call.Line, call)
	}
	return nil
}
