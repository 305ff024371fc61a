package dict

// Class is a word class. Every class is backed by exactly one dictionary.
type Class uint8

// Word classes, each with a dictionary of its own.
const (
	Adjective   Class = iota // brave, lazy, …
	Noun                     // fox, dog, …
	Verb                     // third person singular present: jumps, chases, …
	Imperative               // verb base form: jump, chase, …
	Adverb                   // swiftly, slowly, …
	Preposition              // over, under, …
	Pronoun                  // object pronouns: me, you, it, us
	numClasses
)

var classNames = [numClasses]string{
	"adjective", "noun", "verb", "imperative", "adverb", "preposition", "pronoun",
}

func (c Class) String() string {
	if c >= numClasses {
		return "unknown"
	}
	return classNames[c]
}

// ParseClass finds a word class by its name, e.g. "adjective".
func ParseClass(name string) (Class, bool) {
	for c, n := range classNames {
		if n == name {
			return Class(c), true
		}
	}
	return 0, false
}

// Classes returns all word classes.
func Classes() []Class {
	cc := make([]Class, numClasses)
	for i := range cc {
		cc[i] = Class(i)
	}
	return cc
}
