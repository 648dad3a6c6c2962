package palette

import (
	"fmt"
	"strings"
)

// EntryError reports a palette entry that could not be converted
type EntryError struct {
	Name string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("color %q: %v", e.Name, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// EntryErrors collects every rejected entry of one load, ordered by name
type EntryErrors []*EntryError

func (es EntryErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d invalid palette entries: %s", len(es), strings.Join(msgs, "; "))
}

// Unwrap exposes each entry so errors.Is/As can match any of them
func (es EntryErrors) Unwrap() []error {
	errs := make([]error, len(es))
	for i, e := range es {
		errs[i] = e
	}
	return errs
}
