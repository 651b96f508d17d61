package grader

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietGrader() *Grader {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return New(WithLogger(log.NewEntry(logger)))
}

func checkFile(t *testing.T, fileName string) Result {
	t.Helper()
	result, err := quietGrader().Check(filepath.Join("..", "testfiles", fileName))
	require.NoError(t, err)
	return result
}

func TestReferenceImplementationPasses(t *testing.T) {
	result := checkFile(t, "MultilevelInheritance.java")

	assert.True(t, result.Passed)
	assert.Empty(t, result.Diagnostics)
	assert.Equal(t, []string{
		"Class 'Animal' found.",
		"Class 'Mammal' found.",
		"Class 'Dog' found.",
		"Mammal extends 'Animal'.",
		"Dog extends 'Mammal'.",
		"Method 'speak' overridden in 'Dog' class.",
		"Method 'move' overridden in 'Mammal' class.",
		"Method 'move' in 'Mammal' is not marked with @Override.",
		"Method 'speak' is executed in the main method (line 33).",
		"Method 'move' is executed in the main method (line 34).",
	}, result.Findings)
}

func TestMissingClassFails(t *testing.T) {
	result := checkFile(t, "MissingMammal.java")

	assert.False(t, result.Passed)
	assert.Equal(t, []string{
		"Class 'Mammal' is missing.",
		"'Mammal' must extend 'Animal', but 'Mammal' is not declared.",
		"'Dog' does not extend 'Mammal'.",
		"Method 'move' is not overridden in 'Mammal'.",
	}, result.Diagnostics)
}

func TestWrongParentFails(t *testing.T) {
	result := checkFile(t, "DogExtendsAnimal.java")

	assert.False(t, result.Passed)
	assert.Equal(t, []string{"'Dog' does not extend 'Mammal'."}, result.Diagnostics)
}

func TestInheritedSpeakFails(t *testing.T) {
	result := checkFile(t, "InheritedSpeak.java")

	assert.False(t, result.Passed)
	assert.Equal(t, []string{"Method 'speak' is not overridden in 'Dog'."}, result.Diagnostics)
}

func TestMainWithoutCallsFails(t *testing.T) {
	result := checkFile(t, "MainWithoutCalls.java")

	assert.False(t, result.Passed)
	assert.Equal(t, []string{"Methods 'speak' and 'move' are not executed in the main method."}, result.Diagnostics)
}

func TestSingleCallInMainIsEnough(t *testing.T) {
	result := checkFile(t, "OnlyMoveCalled.java")

	assert.True(t, result.Passed)
	assert.Contains(t, result.Findings, "Method 'move' is executed in the main method (line 22).")
}

func TestNestedDeclarationsPass(t *testing.T) {
	result := checkFile(t, "Qualified.java")

	assert.True(t, result.Passed, "diagnostics: %v", result.Diagnostics)
}

func TestRemovingAnyClassFails(t *testing.T) {
	classes := map[string]string{
		"Animal": `class Animal { void speak() {} }`,
		"Mammal": `class Mammal extends Animal { void move() {} }`,
		"Dog":    `class Dog extends Mammal { void speak() {} }`,
	}
	const app = `class App { public static void main(String[] args) { new Dog().speak(); } }`

	g := quietGrader()
	for removed := range classes {
		source := app
		for name, decl := range classes {
			if name != removed {
				source += "\n" + decl
			}
		}

		result, err := g.CheckSource(removed+".java", []byte(source))
		require.NoError(t, err)
		assert.False(t, result.Passed, "removing %s should fail", removed)
		assert.Contains(t, result.Diagnostics, "Class '"+removed+"' is missing.")
	}
}

func TestChangingDogParentFails(t *testing.T) {
	g := quietGrader()
	for _, parent := range []string{"Animal", "Object", "mammal", "Dog"} {
		source := `
class Animal { void speak() {} }
class Mammal extends Animal { void move() {} }
class Dog extends ` + parent + ` { void speak() {} }
class App { public static void main(String[] args) { new Dog().speak(); } }
`
		result, err := g.CheckSource("Dog.java", []byte(source))
		require.NoError(t, err)
		assert.False(t, result.Passed, "Dog extends %s", parent)
		assert.Equal(t, []string{"'Dog' does not extend 'Mammal'."}, result.Diagnostics)
	}
}

func TestExactNamesOnly(t *testing.T) {
	source := `
class animal { void speak() {} }
class Mammal extends animal { void move() {} }
enum Dog { REX; void speak() {} }
class App { public static void main(String[] args) { } }
`
	result, err := quietGrader().CheckSource("Case.java", []byte(source))
	require.NoError(t, err)

	assert.False(t, result.Passed)
	assert.Equal(t, []string{
		"Class 'Animal' is missing.",
		"Class 'Dog' is missing.",
		"'Mammal' does not extend 'Animal'.",
		"'Dog' must extend 'Mammal', but 'Dog' is not declared.",
		"Methods 'speak' and 'move' are not executed in the main method.",
	}, result.Diagnostics)
}

func TestMissingMainFails(t *testing.T) {
	source := `
class Animal { void speak() {} }
class Mammal extends Animal { void move() {} }
class Dog extends Mammal { void speak() { move(); } }
`
	result, err := quietGrader().CheckSource("NoMain.java", []byte(source))
	require.NoError(t, err)

	assert.False(t, result.Passed)
	assert.Equal(t, []string{"No 'main' method found, so neither 'speak' nor 'move' is executed."}, result.Diagnostics)
}

func TestMissingFile(t *testing.T) {
	_, err := quietGrader().Check(filepath.Join("..", "testfiles", "DoesNotExist.java"))
	require.Error(t, err)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Contains(t, notFound.Path, "DoesNotExist.java")

	var parseErr *ParseError
	assert.False(t, errors.As(err, &parseErr))
}

func TestDirectoryIsNotAFile(t *testing.T) {
	_, err := quietGrader().Check(t.TempDir())

	var notFound *NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestInvalidSource(t *testing.T) {
	_, err := quietGrader().Check(filepath.Join("..", "testfiles", "Invalid.java"))
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Greater(t, parseErr.Line, 0)

	_, err = quietGrader().CheckSource("Broken.java", []byte("class { void ("))
	assert.True(t, errors.As(err, &parseErr))
}

func TestPackageLevelCheck(t *testing.T) {
	out := log.StandardLogger().Out
	log.SetOutput(io.Discard)
	defer log.SetOutput(out)

	result, err := Check(filepath.Join("..", "testfiles", "MultilevelInheritance.java"))
	require.NoError(t, err)
	assert.True(t, result.Passed)
}
