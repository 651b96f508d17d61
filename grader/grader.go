// Package grader checks that a Java source file implements the Animal, Mammal,
// Dog multilevel inheritance exercise.
//
// Structural problems in the submission, such as a missing class or override,
// are reported through a failing Result. Only a missing file or a file that is
// not valid Java produce an error.
package grader

import (
	"github.com/NickyBoy89/javagrader/parsing"
	"github.com/NickyBoy89/javagrader/symbol"
	log "github.com/sirupsen/logrus"
)

// Result is the verdict for a single source file
type Result struct {
	File   string `json:"file" yaml:"file"`
	Passed bool   `json:"passed" yaml:"passed"`
	// Every failed condition, in the order the checks ran
	Diagnostics []string `json:"diagnostics" yaml:"diagnostics"`
	// What the checks did find, in the order the checks ran
	Findings []string `json:"findings" yaml:"findings"`
}

// Grader runs the structural checks against source files
type Grader struct {
	logger *log.Entry
}

// Option configures a Grader
type Option func(*Grader)

// WithLogger sets the logger that findings and diagnostics are reported to
func WithLogger(logger *log.Entry) Option {
	return func(g *Grader) {
		g.logger = logger
	}
}

func New(opts ...Option) *Grader {
	g := &Grader{logger: log.NewEntry(log.StandardLogger())}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Check grades the file at the given path with a default Grader
func Check(path string) (Result, error) {
	return New().Check(path)
}

// Check grades the file at the given path. The returned error is either a
// *NotFoundError or a *ParseError
func (g *Grader) Check(path string) (Result, error) {
	g.logger.WithField("file", path).Info("Starting multilevel inheritance check")

	file, err := parsing.Load(path)
	if err != nil {
		g.logger.WithField("file", path).Warn("File does not exist")
		return Result{File: path}, err
	}
	return g.check(file)
}

// CheckSource grades source that is already in memory, using name to refer to it
func (g *Grader) CheckSource(name string, source []byte) (Result, error) {
	return g.check(&parsing.SourceFile{Name: name, Source: source})
}

func (g *Grader) check(file *parsing.SourceFile) (Result, error) {
	if err := file.ParseAST(); err != nil {
		g.logger.WithFields(log.Fields{
			"file":  file.Name,
			"error": err,
		}).Warn("Error parsing the file")
		return Result{File: file.Name}, err
	}
	defer file.Close()

	g.logger.WithField("file", file.Name).Debug("Parsed the Java file successfully")

	return g.Grade(symbol.ExtractFacts(file.Name, file.Ast, file.Source)), nil
}

// Grade runs every check against facts that were already extracted
func (g *Grader) Grade(facts *symbol.FileScope) Result {
	result := Result{
		File:        facts.Name,
		Passed:      true,
		Diagnostics: []string{},
		Findings:    []string{},
	}

	for _, c := range checks {
		logger := g.logger.WithFields(log.Fields{
			"file":  facts.Name,
			"check": c.name,
		})

		report := c.run(facts)
		for _, finding := range report.findings {
			logger.Info(finding)
		}
		for _, diagnostic := range report.diagnostics {
			logger.Warn(diagnostic)
		}

		result.Findings = append(result.Findings, report.findings...)
		result.Diagnostics = append(result.Diagnostics, report.diagnostics...)
		if len(report.diagnostics) > 0 {
			result.Passed = false
		}
	}

	if result.Passed {
		g.logger.WithField("file", facts.Name).Info("Test passed: Multilevel inheritance is correctly implemented")
	} else {
		g.logger.WithFields(log.Fields{
			"file":     facts.Name,
			"failures": len(result.Diagnostics),
		}).Warn("Test failed")
	}
	return result
}
