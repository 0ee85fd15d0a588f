package dtype

import (
	"fmt"

	"github.com/goccy/go-json"
)

// JSON encoding of logical types. Plain variants serialize as a bare
// string ("int32", "str", ...); parameterized and nested variants as a
// single-key object ({"list": "int32"}, {"datetime": {...}}). The
// encoding round-trips exactly, including List(Null) placeholders.

var kindNames = map[Kind]string{
	KindNull:        "null",
	KindBoolean:     "bool",
	KindInt8:        "int8",
	KindInt16:       "int16",
	KindInt32:       "int32",
	KindInt64:       "int64",
	KindUInt8:       "uint8",
	KindUInt16:      "uint16",
	KindUInt32:      "uint32",
	KindUInt64:      "uint64",
	KindFloat32:     "float32",
	KindFloat64:     "float64",
	KindString:      "str",
	KindBinary:      "binary",
	KindDate:        "date",
	KindTime:        "time",
	KindCategorical: "cat",
	KindUnknown:     "unknown",
}

var namedKinds = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

var unitNames = map[TimeUnit]string{
	Nanoseconds:  "ns",
	Microseconds: "us",
	Milliseconds: "ms",
}

var namedUnits = map[string]TimeUnit{
	"ns": Nanoseconds,
	"us": Microseconds,
	"ms": Milliseconds,
}

type datetimeJSON struct {
	Unit string `json:"unit"`
	Zone string `json:"zone,omitempty"`
}

type durationJSON struct {
	Unit string `json:"unit"`
}

type decimalJSON struct {
	Precision int `json:"precision,omitempty"`
	Scale     int `json:"scale"`
}

type arrayJSON struct {
	Element DataType `json:"element"`
	Width   int      `json:"width"`
}

// MarshalJSON implements json.Marshaler.
func (dt DataType) MarshalJSON() ([]byte, error) {
	if name, ok := kindNames[dt.kind]; ok {
		return json.Marshal(name)
	}
	switch dt.kind {
	case KindDatetime:
		return json.Marshal(map[string]datetimeJSON{
			"datetime": {Unit: unitNames[dt.timeUnit], Zone: dt.timeZone},
		})
	case KindDuration:
		return json.Marshal(map[string]durationJSON{
			"duration": {Unit: unitNames[dt.timeUnit]},
		})
	case KindDecimal:
		return json.Marshal(map[string]decimalJSON{
			"decimal": {Precision: dt.precision, Scale: dt.scale},
		})
	case KindList:
		return json.Marshal(map[string]DataType{"list": *dt.inner})
	case KindArray:
		return json.Marshal(map[string]arrayJSON{
			"array": {Element: *dt.inner, Width: dt.width},
		})
	case KindObject:
		return json.Marshal(map[string]string{"object": dt.objectName})
	default:
		return nil, fmt.Errorf("dtype: cannot serialize kind %d", dt.kind)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (dt *DataType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		kind, ok := namedKinds[name]
		if !ok {
			return fmt.Errorf("dtype: unknown type name %q", name)
		}
		*dt = DataType{kind: kind}
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("dtype: invalid type encoding: %w", err)
	}
	if len(obj) != 1 {
		return fmt.Errorf("dtype: expected a single-key type object, got %d keys", len(obj))
	}

	for key, raw := range obj {
		switch key {
		case "datetime":
			var v datetimeJSON
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			unit, ok := namedUnits[v.Unit]
			if !ok {
				return fmt.Errorf("dtype: unknown time unit %q", v.Unit)
			}
			*dt = Datetime(unit, v.Zone)
		case "duration":
			var v durationJSON
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			unit, ok := namedUnits[v.Unit]
			if !ok {
				return fmt.Errorf("dtype: unknown time unit %q", v.Unit)
			}
			*dt = Duration(unit)
		case "decimal":
			var v decimalJSON
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			*dt = Decimal(v.Precision, v.Scale)
		case "list":
			var inner DataType
			if err := json.Unmarshal(raw, &inner); err != nil {
				return err
			}
			*dt = List(inner)
		case "array":
			var v arrayJSON
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			*dt = Array(v.Element, v.Width)
		case "object":
			var typeName string
			if err := json.Unmarshal(raw, &typeName); err != nil {
				return err
			}
			*dt = Object(typeName)
		default:
			return fmt.Errorf("dtype: unknown type key %q", key)
		}
	}
	return nil
}

type fieldJSON struct {
	Name  string   `json:"name"`
	DType DataType `json:"dtype"`
}

// MarshalJSON implements json.Marshaler.
func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(fieldJSON{Name: f.name, DType: f.dt})
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Field) UnmarshalJSON(data []byte) error {
	var v fieldJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = NewField(v.Name, v.DType)
	return nil
}
