package sanitizer

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

// titleCase upper-cases the first letter of every word and lower-cases the rest.
// A Caser keeps state between calls, so one is built per invocation.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// NormalizeName title-cases every word. Spacing is left as given, so names
// that differ only in whitespace stay distinct.
func NormalizeName(input string) string {
	p := Pipeline{
		titleCase,
	}
	return p.Apply(input)
}
