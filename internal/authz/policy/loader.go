package policy

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed policies/actions.json
var policiesFS embed.FS

// Loader loads the action catalog from the embedded JSON file
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// LoadCatalogFile reads and parses policies/actions.json
func (l *Loader) LoadCatalogFile() (*CatalogFile, error) {
	data, err := policiesFS.ReadFile("policies/actions.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read actions.json: %w", err)
	}
	return ParseCatalogFile(data)
}

// ParseCatalogFile parses and validates catalog JSON.
func ParseCatalogFile(data []byte) (*CatalogFile, error) {
	var file CatalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse actions.json: %w", err)
	}
	if file.DefaultCheck == "" {
		file.DefaultCheck = CheckAdminAccess
	}
	if !file.DefaultCheck.valid() {
		return nil, fmt.Errorf("invalid default_check %q", file.DefaultCheck)
	}
	for _, a := range file.Actions {
		if a.ActionType == "" {
			return nil, fmt.Errorf("action entry without action_type")
		}
		if !a.Check.valid() {
			return nil, fmt.Errorf("action %s: invalid check %q", a.ActionType, a.Check)
		}
	}
	return &file, nil
}
