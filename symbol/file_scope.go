package symbol

// FileScope holds every fact extracted from a single source file
type FileScope struct {
	// The name of the file the facts came from
	Name string `json:"file" yaml:"file"`
	// The package that the file is located in, empty for the default package
	Package string `json:"package,omitempty" yaml:"package,omitempty"`
	// Every imported path, as written
	Imports []string `json:"imports,omitempty" yaml:"imports,omitempty"`

	Classes []*ClassFact  `json:"classes" yaml:"classes"`
	Methods []*MethodFact `json:"methods" yaml:"methods"`
	Calls   []*CallFact   `json:"calls" yaml:"calls"`
}

// FindClass searches through every declared type in the file
func (fs *FileScope) FindClass() *ClassFinder {
	return (*ClassFinder)(fs)
}

// FindMethod searches through every declared method in the file
func (fs *FileScope) FindMethod() *MethodFinder {
	return (*MethodFinder)(fs)
}

// FindCall searches through every method invocation in the file
func (fs *FileScope) FindCall() *CallFinder {
	return (*CallFinder)(fs)
}

// Class returns the first declared type with the given name, or nil if there
// is none
func (fs *FileScope) Class(name string) *ClassFact {
	if found := fs.FindClass().ByName(name); len(found) > 0 {
		return found[0]
	}
	return nil
}
