package symbol

// ClassFinder searches a file's declared types
type ClassFinder FileScope

func (cf *ClassFinder) By(criteria func(c *ClassFact) bool) []*ClassFact {
	results := []*ClassFact{}
	for _, class := range cf.Classes {
		if criteria(class) {
			results = append(results, class)
		}
	}
	return results
}

func (cf *ClassFinder) ByName(name string) []*ClassFact {
	return cf.By(func(c *ClassFact) bool {
		return c.Name == name
	})
}

// ByParent finds every type that directly extends the named type
func (cf *ClassFinder) ByParent(parent string) []*ClassFact {
	return cf.By(func(c *ClassFact) bool {
		return c.Parent == parent
	})
}

// MethodFinder searches a file's declared methods
type MethodFinder FileScope

func (mf *MethodFinder) By(criteria func(m *MethodFact) bool) []*MethodFact {
	results := []*MethodFact{}
	for _, method := range mf.Methods {
		if criteria(method) {
			results = append(results, method)
		}
	}
	return results
}

func (mf *MethodFinder) ByName(name string) []*MethodFact {
	return mf.By(func(m *MethodFact) bool {
		return m.Name == name
	})
}

// InClass finds the methods with the given name declared directly in the
// named class. Inherited methods are not included
func (mf *MethodFinder) InClass(name, className string) []*MethodFact {
	return mf.By(func(m *MethodFact) bool {
		return m.Name == name && m.Class == className
	})
}

// CallFinder searches a file's method invocations
type CallFinder FileScope

func (cf *CallFinder) By(criteria func(c *CallFact) bool) []*CallFact {
	results := []*CallFact{}
	for _, call := range cf.Calls {
		if criteria(call) {
			results = append(results, call)
		}
	}
	return results
}

// ByName finds the calls to a method with the given name
func (cf *CallFinder) ByName(name string) []*CallFact {
	return cf.By(func(c *CallFact) bool {
		return c.Callee == name
	})
}

// Within finds every call made anywhere inside a method with the given name
func (cf *CallFinder) Within(method string) []*CallFact {
	return cf.By(func(c *CallFact) bool {
		return c.Within(method)
	})
}
