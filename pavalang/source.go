package pavalang

import "strings"

// Source is a named piece of code, pre-split into lines since every stage
// works line by line.
type Source struct {
	Name  string
	Lines []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:  name,
		Lines: strings.Split(content, "\n"),
	}
}
