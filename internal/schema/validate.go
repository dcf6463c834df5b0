package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/hamba/avro/v2"
)

// Schema is a parsed Avro schema.
type Schema struct {
	avro avro.Schema
}

// Parse parses the JSON text of an Avro schema. Each call resolves named
// types in its own cache so that registries serving several versions of the
// same record never collide.
func Parse(text string) (*Schema, error) {
	s, err := avro.ParseWithCache(text, "", &avro.SchemaCache{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse avro schema: %w", err)
	}
	return &Schema{avro: s}, nil
}

// String returns the canonical form of the schema.
func (s *Schema) String() string {
	return s.avro.String()
}

// ValidationError describes the first value that does not match the schema.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return e.Path + ": " + e.Reason
}

// Validate checks datum against the schema. The datum is converted to its
// JSON form first, so struct tags decide field names.
func (s *Schema) Validate(datum any) error {
	generic, err := toGeneric(datum)
	if err != nil {
		return err
	}
	return validate(s.avro, generic, "")
}

func toGeneric(datum any) (any, error) {
	b, err := json.Marshal(datum)
	if err != nil {
		return nil, fmt.Errorf("failed to encode datum: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode datum: %w", err)
	}
	return out, nil
}

func mismatch(path string, format string, args ...any) error {
	return &ValidationError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

func validate(s avro.Schema, v any, path string) error {
	switch s.Type() {
	case avro.Null:
		if v != nil {
			return mismatch(path, "expected null, got %s", describe(v))
		}
	case avro.Boolean:
		if _, ok := v.(bool); !ok {
			return mismatch(path, "expected boolean, got %s", describe(v))
		}
	case avro.String, avro.Bytes:
		if _, ok := v.(string); !ok {
			return mismatch(path, "expected %s, got %s", s.Type(), describe(v))
		}
	case avro.Int:
		return validateInteger(v, path, math.MinInt32, math.MaxInt32)
	case avro.Long:
		return validateInteger(v, path, math.MinInt64, math.MaxInt64)
	case avro.Float, avro.Double:
		n, ok := v.(json.Number)
		if !ok {
			return mismatch(path, "expected %s, got %s", s.Type(), describe(v))
		}
		if _, err := n.Float64(); err != nil {
			return mismatch(path, "expected %s, got %s", s.Type(), n)
		}
	case avro.Enum:
		return validateEnum(s.(*avro.EnumSchema), v, path)
	case avro.Fixed:
		str, ok := v.(string)
		if !ok || len(str) != s.(*avro.FixedSchema).Size() {
			return mismatch(path, "expected fixed(%d), got %s", s.(*avro.FixedSchema).Size(), describe(v))
		}
	case avro.Array:
		items, ok := v.([]any)
		if !ok {
			return mismatch(path, "expected array, got %s", describe(v))
		}
		for i, item := range items {
			if err := validate(s.(*avro.ArraySchema).Items(), item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case avro.Map:
		m, ok := v.(map[string]any)
		if !ok {
			return mismatch(path, "expected map, got %s", describe(v))
		}
		for _, k := range sortedKeys(m) {
			if err := validate(s.(*avro.MapSchema).Values(), m[k], join(path, k)); err != nil {
				return err
			}
		}
	case avro.Record:
		return validateRecord(s.(*avro.RecordSchema), v, path)
	case avro.Union:
		return validateUnion(s.(*avro.UnionSchema), v, path)
	case avro.Ref:
		return validate(s.(*avro.RefSchema).Schema(), v, path)
	default:
		return mismatch(path, "unsupported schema type %s", s.Type())
	}
	return nil
}

func validateInteger(v any, path string, lo, hi int64) error {
	n, ok := v.(json.Number)
	if !ok {
		return mismatch(path, "expected integer, got %s", describe(v))
	}
	i, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil || i < lo || i > hi {
		return mismatch(path, "expected integer in [%d, %d], got %s", lo, hi, n)
	}
	return nil
}

func validateEnum(s *avro.EnumSchema, v any, path string) error {
	str, ok := v.(string)
	if !ok {
		return mismatch(path, "expected enum %s, got %s", s.Name(), describe(v))
	}
	for _, sym := range s.Symbols() {
		if sym == str {
			return nil
		}
	}
	return mismatch(path, "%q is not a symbol of enum %s (%s)", str, s.Name(), strings.Join(s.Symbols(), ", "))
}

func validateRecord(s *avro.RecordSchema, v any, path string) error {
	m, ok := v.(map[string]any)
	if !ok {
		return mismatch(path, "expected record %s, got %s", s.Name(), describe(v))
	}
	for _, f := range s.Fields() {
		fv, present := m[f.Name()]
		if !present && f.HasDefault() {
			continue
		}
		if err := validate(f.Type(), fv, join(path, f.Name())); err != nil {
			return err
		}
	}
	return nil
}

func validateUnion(s *avro.UnionSchema, v any, path string) error {
	var first error
	for _, branch := range s.Types() {
		err := validate(branch, v, path)
		if err == nil {
			return nil
		}
		if first == nil {
			first = err
		}
	}
	if first == nil {
		return mismatch(path, "empty union")
	}
	return mismatch(path, "no union branch matches %s (first branch: %v)", describe(v), first)
}

func describe(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", t)
	}
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
