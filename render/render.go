// Package render writes resolved resources as plain text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/locator/api"
	"gopkg.in/yaml.v3"
)

// Name is the name of the option value that describes how to render output
type Name string

const (
	// YAML render output in YAML
	YAML = Name(`yaml`)
	// JSON render output in JSON
	JSON = Name(`json`)
	// Text render output as plain text, one location per line
	Text = Name(`s`)
)

// Entry is the rendered form of a resource
type Entry struct {
	Location string   `json:"location" yaml:"location"`
	Kind     api.Kind `json:"kind" yaml:"kind"`
	Exists   bool     `json:"exists" yaml:"exists"`
}

// Entries returns the rendered form of the resources in the given set, in order
func Entries(set *api.ResultSet) []Entry {
	entries := make([]Entry, 0, set.Len())
	set.Each(func(r api.Resource) {
		entries = append(entries, Entry{Location: r.Location(), Kind: r.Kind(), Exists: r.Exists()})
	})
	return entries
}

// Resources renders the resources of the given set on a writer using the specified Name. An
// empty Name means Text.
func Resources(renderAs Name, set *api.ResultSet, out io.Writer) error {
	switch renderAs {
	case JSON:
		bs, err := json.Marshal(Entries(set))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(bs))
		return err
	case YAML:
		bs, err := yaml.Marshal(Entries(set))
		if err != nil {
			return err
		}
		_, err = out.Write(bs)
		return err
	case Text, ``:
		var err error
		set.Each(func(r api.Resource) {
			if err == nil {
				_, err = fmt.Fprintln(out, r.Location())
			}
		})
		return err
	default:
		return api.Error(api.UnknownRendering, issue.H{`name`: string(renderAs)})
	}
}
