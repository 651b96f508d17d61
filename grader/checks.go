package grader

import (
	"fmt"

	"github.com/NickyBoy89/javagrader/symbol"
)

// The hierarchy that every submission has to implement
const (
	baseClass   = "Animal"
	middleClass = "Mammal"
	leafClass   = "Dog"

	speakMethod = "speak"
	moveMethod  = "move"
	entryPoint  = "main"
)

// report is the outcome of a single check
type report struct {
	findings    []string
	diagnostics []string
}

func (r *report) found(format string, args ...any) {
	r.findings = append(r.findings, fmt.Sprintf(format, args...))
}

func (r *report) fail(format string, args ...any) {
	r.diagnostics = append(r.diagnostics, fmt.Sprintf(format, args...))
}

type check struct {
	name string
	run  func(facts *symbol.FileScope) report
}

// checks run in this order, and their diagnostics are reported in it
var checks = []check{
	{name: "classes", run: checkClasses},
	{name: "inheritance", run: checkInheritance},
	{name: "overrides", run: checkOverrides},
	{name: "execution", run: checkExecution},
}

// classesNamed returns the classes and interfaces with the given name. Enums,
// records and annotation types can't take part in the hierarchy
func classesNamed(facts *symbol.FileScope, name string) []*symbol.ClassFact {
	return facts.FindClass().By(func(c *symbol.ClassFact) bool {
		return c.Name == name && (c.Kind == symbol.KindClass || c.Kind == symbol.KindInterface)
	})
}

func checkClasses(facts *symbol.FileScope) report {
	var r report
	for _, name := range []string{baseClass, middleClass, leafClass} {
		if len(classesNamed(facts, name)) > 0 {
			r.found("Class '%s' found.", name)
		} else {
			r.fail("Class '%s' is missing.", name)
		}
	}
	return r
}

func checkInheritance(facts *symbol.FileScope) report {
	var r report
	for _, edge := range [][2]string{{middleClass, baseClass}, {leafClass, middleClass}} {
		child, parent := edge[0], edge[1]

		declared := classesNamed(facts, child)
		if len(declared) == 0 {
			r.fail("'%s' must extend '%s', but '%s' is not declared.", child, parent, child)
			continue
		}

		extends := false
		for _, class := range declared {
			if class.Parent == parent {
				extends = true
			}
		}
		if extends {
			r.found("%s extends '%s'.", child, parent)
		} else {
			r.fail("'%s' does not extend '%s'.", child, parent)
		}
	}
	return r
}

func checkOverrides(facts *symbol.FileScope) report {
	var r report
	for _, override := range [][2]string{{speakMethod, leafClass}, {moveMethod, middleClass}} {
		method, class := override[0], override[1]

		declared := facts.FindMethod().InClass(method, class)
		if len(declared) == 0 {
			r.fail("Method '%s' is not overridden in '%s'.", method, class)
			continue
		}

		r.found("Method '%s' overridden in '%s' class.", method, class)
		if !declared[0].Annotated("Override") {
			r.found("Method '%s' in '%s' is not marked with @Override.", method, class)
		}
	}
	return r
}

// checkExecution requires that `speak` or `move` is called from `main`. A single
// call to either one is enough
func checkExecution(facts *symbol.FileScope) report {
	var r report

	if len(facts.FindMethod().ByName(entryPoint)) == 0 {
		r.fail("No '%s' method found, so neither '%s' nor '%s' is executed.", entryPoint, speakMethod, moveMethod)
		return r
	}

	executed := facts.FindCall().By(func(c *symbol.CallFact) bool {
		return c.Within(entryPoint) && (c.Callee == speakMethod || c.Callee == moveMethod)
	})
	if len(executed) == 0 {
		r.fail("Methods '%s' and '%s' are not executed in the %s method.", speakMethod, moveMethod, entryPoint)
		return r
	}

	for _, call := range executed {
		r.found("Method '%s' is executed in the %s method (line %d).", call.Callee, entryPoint, call.Line)
	}
	return r
}
