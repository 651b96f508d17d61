package grader

import "github.com/NickyBoy89/javagrader/parsing"

type (
	// NotFoundError is returned by Check when the path does not reference an existing file
	NotFoundError = parsing.NotFoundError
	// ParseError is returned by Check when the file is not valid Java
	ParseError = parsing.ParseError
)
