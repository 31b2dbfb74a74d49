// Package delta reads rich-text editor deltas and reports which table
// templates they reference.
package delta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/tablestyles/internal/domain/style"
)

const (
	// cellAttribute holds "tableId|rowId|cellId|mergeId|templateId".
	cellAttribute     = "td"
	templateAttribute = "tableTemplate"
	templateSegment   = 4
)

// Op is a single delta operation. Only attributes are inspected.
type Op struct {
	Insert     json.RawMessage        `json:"insert,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// Delta is a document or change expressed as a list of operations.
type Delta struct {
	Ops []Op `json:"ops"`
}

// Parse decodes either {"ops": [...]} or a bare array of operations.
func Parse(raw []byte) (Delta, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Delta{}, nil
	}

	if trimmed[0] == '[' {
		var ops []Op
		if err := json.Unmarshal(trimmed, &ops); err != nil {
			return Delta{}, fmt.Errorf("decode delta ops: %w", err)
		}
		return Delta{Ops: ops}, nil
	}

	var d Delta
	if err := json.Unmarshal(trimmed, &d); err != nil {
		return Delta{}, fmt.Errorf("decode delta: %w", err)
	}
	return d, nil
}

// AssignedTemplateIDs returns the distinct template ids referenced by raw,
// sorted.
func AssignedTemplateIDs(raw []byte) ([]string, error) {
	d, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return d.TemplateIDs(), nil
}

// TemplateIDs returns the distinct template ids referenced by the delta's
// table cell and table attributes, sorted. Values that are not valid ids
// are ignored.
func (d Delta) TemplateIDs() []string {
	seen := make(map[string]struct{})
	for _, op := range d.Ops {
		if id, ok := cellTemplateID(op.Attributes[cellAttribute]); ok {
			seen[id] = struct{}{}
		}
		if id, ok := op.Attributes[templateAttribute].(string); ok && style.IsValidTemplateID(id) {
			seen[id] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func cellTemplateID(value interface{}) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	parts := strings.Split(s, "|")
	if len(parts) <= templateSegment {
		return "", false
	}
	id := strings.TrimSpace(parts[templateSegment])
	if !style.IsValidTemplateID(id) {
		return "", false
	}
	return id, true
}
