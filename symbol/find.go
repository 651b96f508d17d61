package symbol

// Finder represents an object that can search through its contents for a given
// list of facts that match a certian criteria
type Finder[T any] interface {
	By(criteria func(fact T) bool) []T
	ByName(name string) []T
}

var (
	_ Finder[*ClassFact]  = (*ClassFinder)(nil)
	_ Finder[*MethodFact] = (*MethodFinder)(nil)
	_ Finder[*CallFact]   = (*CallFinder)(nil)
)
