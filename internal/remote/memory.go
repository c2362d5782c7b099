package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process Service. It backs tests and local runs that have
// no postgres at hand, and assigns uuid identities the way the real store
// does. Rows round-trip through their json tags, which name the same
// columns the gorm implementation uses.
type Memory struct {
	mu     sync.RWMutex
	tables map[string][]map[string]any

	// Err, when set, is consulted before every operation; returning a
	// non-nil error makes that operation fail. Used to exercise remote
	// failure paths in tests.
	Err func(op, collection string) error
}

func NewMemory() *Memory {
	return &Memory{tables: make(map[string][]map[string]any)}
}

func (m *Memory) fail(op, collection string) error {
	if m.Err == nil {
		return nil
	}
	return m.Err(op, collection)
}

func (m *Memory) Select(ctx context.Context, collection string, dest any, filters ...Filter) error {
	if err := m.fail("select", collection); err != nil {
		return err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]map[string]any, 0)
	for _, row := range m.tables[collection] {
		if matches(row, filters) {
			out = append(out, row)
		}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dest)
}

func (m *Memory) Insert(ctx context.Context, collection string, rows any) error {
	if err := m.fail("insert", collection); err != nil {
		return err
	}
	maps, single, err := toMaps(rows)
	if err != nil {
		return err
	}
	m.mu.Lock()
	for _, row := range maps {
		if id, _ := row["id"].(string); id == "" {
			row["id"] = uuid.NewString()
		}
		m.tables[collection] = append(m.tables[collection], row)
	}
	m.mu.Unlock()
	return writeBack(maps, single, rows)
}

func (m *Memory) Update(ctx context.Context, collection string, changes map[string]any, filters ...Filter) error {
	if err := m.fail("update", collection); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.tables[collection] {
		if !matches(row, filters) {
			continue
		}
		for k, v := range changes {
			row[k] = norm(v)
		}
	}
	return nil
}

func (m *Memory) Delete(ctx context.Context, collection string, filters ...Filter) error {
	if err := m.fail("delete", collection); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.tables[collection][:0]
	for _, row := range m.tables[collection] {
		if !matches(row, filters) {
			kept = append(kept, row)
		}
	}
	m.tables[collection] = kept
	return nil
}

func (m *Memory) Upsert(ctx context.Context, collection string, rows any, conflictColumns ...string) error {
	if err := m.fail("upsert", collection); err != nil {
		return err
	}
	maps, single, err := toMaps(rows)
	if err != nil {
		return err
	}
	m.mu.Lock()
	for _, row := range maps {
		if have := m.findConflict(collection, row, conflictColumns); have != nil {
			row["id"] = have["id"]
			for k, v := range row {
				have[k] = v
			}
			continue
		}
		if id, _ := row["id"].(string); id == "" {
			row["id"] = uuid.NewString()
		}
		m.tables[collection] = append(m.tables[collection], row)
	}
	m.mu.Unlock()
	return writeBack(maps, single, rows)
}

func (m *Memory) findConflict(collection string, row map[string]any, cols []string) map[string]any {
	if len(cols) == 0 {
		return nil
	}
	for _, have := range m.tables[collection] {
		same := true
		for _, col := range cols {
			if !reflect.DeepEqual(have[col], row[col]) {
				same = false
				break
			}
		}
		if same {
			return have
		}
	}
	return nil
}

// Count reports how many rows a collection holds; test helper.
func (m *Memory) Count(collection string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tables[collection])
}

func matches(row map[string]any, filters []Filter) bool {
	for _, f := range filters {
		have := row[f.Column]
		if f.isIn {
			found := false
			for _, v := range f.Values {
				if reflect.DeepEqual(have, norm(v)) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		} else if !reflect.DeepEqual(have, norm(f.Value)) {
			return false
		}
	}
	return true
}

// norm maps a Go value onto its JSON shape (float64 numbers, string, bool)
// so filter values compare against stored rows.
func norm(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return v
	}
	return out
}

func toMaps(rows any) (maps []map[string]any, single bool, err error) {
	b, err := json.Marshal(rows)
	if err != nil {
		return nil, false, err
	}
	if len(b) > 0 && b[0] == '[' {
		if err := json.Unmarshal(b, &maps); err != nil {
			return nil, false, err
		}
		return maps, false, nil
	}
	one := map[string]any{}
	if err := json.Unmarshal(b, &one); err != nil {
		return nil, false, fmt.Errorf("insert rows must be a struct or slice: %w", err)
	}
	return []map[string]any{one}, true, nil
}

// writeBack copies assigned ids (and any other stored shape) back into the
// caller's rows.
func writeBack(maps []map[string]any, single bool, rows any) error {
	var b []byte
	var err error
	if single {
		b, err = json.Marshal(maps[0])
	} else {
		b, err = json.Marshal(maps)
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(b, rows)
}
