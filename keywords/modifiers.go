package keywords

import "golang.org/x/exp/slices"

// List from https://www.w3schools.com/java/java_modifiers.asp
var (
	AccessModifiers    = []string{"private", "protected", "public"}
	NonAccessModifiers = []string{"final", "static", "abstract", "transient", "synchronized", "volatile", "native", "strictfp", "default", "sealed", "non-sealed"}
)

// IsModifier reports whether the given token is a Java access or non-access modifier
func IsModifier(token string) bool {
	return slices.Contains(AccessModifiers, token) || slices.Contains(NonAccessModifiers, token)
}
