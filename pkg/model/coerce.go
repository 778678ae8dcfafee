package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/goliatone/go-surveymodel/pkg/constraints"
)

// binder coerces raw values into the canonical representation of a field:
// string, bool, int, []string, []int, []any, map[string]any, []*Entity, or a
// JSON-normalised value for FieldAny.
type binder struct {
	reg    *Registry
	entity string
}

func (b binder) coerce(f Field, value any) (any, error) {
	if raw, ok := value.(json.RawMessage); ok && f.Type != FieldEntities {
		decoded, err := decodeRaw(raw)
		if err != nil {
			return nil, b.mismatch(f, string(f.Type), string(raw))
		}
		value = decoded
	}

	switch f.Type {
	case FieldString:
		s, ok := toString(value)
		if !ok {
			return nil, b.mismatch(f, "string", value)
		}
		if f.Fixed {
			want, _ := f.Default.(string)
			if s != want {
				return nil, &ConstraintError{Entity: b.entity, Field: f.Name, Value: s, Allowed: []string{want}}
			}
		}
		return s, nil
	case FieldBoolean:
		v, ok := toBool(value)
		if !ok {
			return nil, b.mismatch(f, "boolean", value)
		}
		return v, nil
	case FieldInteger:
		v, ok := toInt(value)
		if !ok {
			return nil, b.mismatch(f, "integer", value)
		}
		return v, nil
	case FieldEnum:
		s, ok := value.(string)
		if !ok {
			return nil, b.mismatch(f, "string", value)
		}
		if err := b.allowed(f, s); err != nil {
			return nil, err
		}
		return s, nil
	case FieldURL:
		s, ok := value.(string)
		if !ok {
			return nil, b.mismatch(f, "url", value)
		}
		if s == "" {
			if f.Required {
				return nil, &MissingFieldError{Entity: b.entity, Field: f.Name}
			}
			return s, nil
		}
		if !validURL(s) {
			return nil, b.mismatch(f, "absolute http(s) url", s)
		}
		return s, nil
	case FieldStringList, FieldURLList:
		items, ok := toSlice(value)
		if !ok {
			return nil, b.mismatch(f, "list of strings", value)
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := toString(item)
			if !ok || (f.Type == FieldURLList && !validURL(s)) {
				return nil, b.mismatch(f, "list of "+itemLabel(f.Type), value)
			}
			out = append(out, s)
		}
		return out, nil
	case FieldIntegerList:
		items, ok := toSlice(value)
		if !ok {
			return nil, b.mismatch(f, "list of integers", value)
		}
		out := make([]int, 0, len(items))
		for _, item := range items {
			v, ok := toInt(item)
			if !ok {
				return nil, b.mismatch(f, "list of integers", value)
			}
			out = append(out, v)
		}
		return out, nil
	case FieldList:
		normalized, err := normalizeRaw(value)
		if err != nil {
			return nil, b.mismatch(f, "list", value)
		}
		items, ok := normalized.([]any)
		if !ok {
			return nil, b.mismatch(f, "list", value)
		}
		for i, item := range items {
			shaped, ok := checkShape(f.Items, item)
			if !ok {
				return nil, b.mismatch(f, "list of "+string(f.Items), value)
			}
			items[i] = shaped
		}
		return items, nil
	case FieldObject:
		normalized, err := normalizeRaw(value)
		if err != nil {
			return nil, b.mismatch(f, "object", value)
		}
		obj, ok := normalized.(map[string]any)
		if !ok {
			return nil, b.mismatch(f, "object", value)
		}
		for key, item := range obj {
			if err := b.allowed(f, key); err != nil {
				return nil, err
			}
			shaped, ok := checkShape(f.Values, item)
			if !ok {
				return nil, b.mismatch(f, "object of "+string(f.Values), value)
			}
			obj[key] = shaped
		}
		return obj, nil
	case FieldAny:
		normalized, err := normalizeRaw(value)
		if err != nil {
			return nil, b.mismatch(f, "json value", value)
		}
		return normalized, nil
	case FieldEntities:
		return b.entities(f, value)
	default:
		return nil, fmt.Errorf("model: %s.%s has unsupported field type %q", b.entity, f.Name, f.Type)
	}
}

func (b binder) allowed(f Field, value string) error {
	provider := b.reg.Constraints()
	if constraints.Allows(provider, f.Constraint, value) {
		return nil
	}
	allowed, _ := provider.AllowedValues(f.Constraint)
	return &ConstraintError{Entity: b.entity, Field: f.Name, Value: value, Allowed: allowed}
}

func (b binder) mismatch(f Field, expected string, value any) error {
	return &TypeMismatchError{Entity: b.entity, Field: f.Name, Expected: expected, Value: value}
}

func (b binder) entities(f Field, value any) (any, error) {
	var items []any
	switch v := value.(type) {
	case json.RawMessage:
		var raws []json.RawMessage
		if err := json.Unmarshal(v, &raws); err != nil {
			return nil, b.mismatch(f, "list of "+string(f.Family)+" objects", string(v))
		}
		items = make([]any, len(raws))
		for i, raw := range raws {
			items[i] = raw
		}
	case []*Entity:
		items = make([]any, len(v))
		for i, entity := range v {
			items[i] = entity
		}
	case []Values:
		items = make([]any, len(v))
		for i, values := range v {
			items[i] = values
		}
	default:
		generic, ok := toSlice(value)
		if !ok {
			return nil, b.mismatch(f, "list of "+string(f.Family)+" entities", value)
		}
		items = generic
	}

	out := make([]*Entity, 0, len(items))
	var errs []error
	for i, item := range items {
		entity, err := b.element(f, item)
		if err != nil {
			errs = append(errs, prefixPath(err, fmt.Sprintf("%s[%d]", f.External, i)))
			continue
		}
		out = append(out, entity)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

func (b binder) element(f Field, item any) (*Entity, error) {
	switch v := item.(type) {
	case *Entity:
		if v == nil || v.typ.family != f.Family {
			return nil, b.mismatch(f, string(f.Family)+" entity", item)
		}
		return v, nil
	case Values:
		t, err := b.reg.resolveValues(f.Family, v)
		if err != nil {
			return nil, err
		}
		return b.reg.New(t, v)
	case json.RawMessage:
		return b.reg.DecodeFamily(f.Family, v)
	case []byte:
		return b.reg.DecodeFamily(f.Family, v)
	case map[string]any:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, b.mismatch(f, string(f.Family)+" object", item)
		}
		return b.reg.DecodeFamily(f.Family, raw)
	default:
		return nil, b.mismatch(f, string(f.Family)+" entity", item)
	}
}

func checkRanges(t *Type, entity string, value func(string) int) error {
	var errs []error
	for _, r := range t.ranges {
		lower, upper := value(r.Lower), value(r.Upper)
		if r.Value == "" {
			if lower > upper {
				errs = append(errs, &RangeError{Entity: entity, Lower: r.Lower, Upper: r.Upper, LowerValue: lower, UpperValue: upper})
			}
			continue
		}
		current := value(r.Value)
		if lower > current || current > upper {
			errs = append(errs, &RangeError{
				Entity: entity, Lower: r.Lower, Value: r.Value, Upper: r.Upper,
				LowerValue: lower, ValueValue: current, UpperValue: upper,
			})
		}
	}
	return errors.Join(errs...)
}

func normalizeDefault(f Field) (any, error) {
	if f.Default == nil {
		switch f.Type {
		case FieldAny:
			return nil, nil
		case FieldEntities:
			return []*Entity{}, nil
		}
		return nil, errors.New("default is required for optional fields")
	}
	if f.Type == FieldEntities {
		return []*Entity{}, nil
	}
	b := binder{reg: nil, entity: "default"}
	if f.Type == FieldEnum || f.Type == FieldObject {
		// Constraint tables are bound later through the registry.
		f.Constraint = ""
	}
	f.Fixed = false
	return b.coerce(f, f.Default)
}

func decodeRaw(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// normalizeRaw round-trips a value through JSON so raw fields always hold
// the same representation whether they came from Go literals or a document.
func normalizeRaw(value any) (any, error) {
	if raw, ok := value.(json.RawMessage); ok {
		return decodeRaw(raw)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return decodeRaw(data)
}

func checkShape(shape Shape, value any) (any, bool) {
	switch shape {
	case "", ShapeAny:
		return value, true
	case ShapeString:
		return scalarString(value)
	case ShapeObject:
		obj, ok := value.(map[string]any)
		return obj, ok
	case ShapeStringMap:
		obj, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		return stringValues(obj)
	case ShapeStringOrObject:
		if s, ok := scalarString(value); ok {
			return s, true
		}
		obj, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		return stringValues(obj)
	case ShapeIntegerOrObject:
		if n, ok := value.(json.Number); ok {
			return n, isIntegral(n)
		}
		obj, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		for _, item := range obj {
			if !isScalar(item) {
				return nil, false
			}
		}
		return obj, true
	case ShapeIntegerOrString:
		switch v := value.(type) {
		case string:
			return v, true
		case json.Number:
			return v, isIntegral(v)
		}
		return nil, false
	default:
		return nil, false
	}
}

func stringValues(obj map[string]any) (any, bool) {
	for key, item := range obj {
		s, ok := scalarString(item)
		if !ok {
			return nil, false
		}
		obj[key] = s
	}
	return obj, true
}

func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	default:
		return "", false
	}
}

func isScalar(value any) bool {
	switch value.(type) {
	case string, json.Number, bool:
		return true
	default:
		return false
	}
}

func isIntegral(n json.Number) bool {
	if _, err := n.Int64(); err == nil {
		return true
	}
	f, err := n.Float64()
	return err == nil && f == math.Trunc(f)
}

func toString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

func toBool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "on", "1":
			return true, true
		case "false", "no", "off", "0":
			return false, true
		}
		return false, false
	default:
		if n, ok := toInt(value); ok && (n == 0 || n == 1) {
			return n == 1, true
		}
		return false, false
	}
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case uint:
		if v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		if uint64(v) > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case uint64:
		if v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case float32:
		return floatToInt(float64(v))
	case float64:
		return floatToInt(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	default:
		return 0, false
	}
}

// intLimit is 2^63 (2^31 on 32-bit); float64(math.MaxInt) rounds up to it.
var intLimit = math.Ldexp(1, strconv.IntSize-1)

func floatToInt(f float64) (int, bool) {
	if f != math.Trunc(f) || f < -intLimit || f >= intLimit {
		return 0, false
	}
	return int(f), true
}

func toSlice(value any) ([]any, bool) {
	if items, ok := value.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func validURL(raw string) bool {
	if raw == "" || len(raw) > 2083 {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func itemLabel(t FieldType) string {
	if t == FieldURLList {
		return "absolute http(s) urls"
	}
	return "strings"
}
