package policy

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog maps action types to the check they require. Action types are
// free-form tags, so unknown ones get the default check.
type Catalog struct {
	actions      map[string]*ActionPolicy
	defaultCheck Check
}

// NewCatalog loads the embedded action catalog.
func NewCatalog() (*Catalog, error) {
	file, err := NewLoader().LoadCatalogFile()
	if err != nil {
		return nil, fmt.Errorf("failed to load action catalog: %w", err)
	}
	return NewCatalogFromFile(file), nil
}

func NewCatalogFromFile(file *CatalogFile) *Catalog {
	c := &Catalog{
		actions:      make(map[string]*ActionPolicy, len(file.Actions)),
		defaultCheck: file.DefaultCheck,
	}
	for _, a := range file.Actions {
		c.actions[strings.ToLower(a.ActionType)] = a
	}
	return c
}

// CheckFor returns the check required by actionType.
func (c *Catalog) CheckFor(actionType string) Check {
	if a, ok := c.actions[strings.ToLower(strings.TrimSpace(actionType))]; ok {
		return a.Check
	}
	return c.defaultCheck
}

// Lookup returns the policy for a known action type.
func (c *Catalog) Lookup(actionType string) (*ActionPolicy, bool) {
	a, ok := c.actions[strings.ToLower(strings.TrimSpace(actionType))]
	return a, ok
}

// ActionTypes lists the known action types in sorted order.
func (c *Catalog) ActionTypes() []string {
	out := make([]string, 0, len(c.actions))
	for k := range c.actions {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
