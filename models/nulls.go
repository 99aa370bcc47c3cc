package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// RejectNulls reports every field of body that carries a default but was
// sent as an explicit JSON null. A null there would otherwise be
// indistinguishable from an omitted field and silently take the default.
func RejectNulls(body []byte, v interface{}) error {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var fields []FieldError
	collectNulls(body, t, "", &fields)
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func collectNulls(body []byte, t reflect.Type, prefix string, out *[]FieldError) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return
	}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name := jsonName(sf)
		if name == "" {
			continue
		}
		value, ok := raw[name]
		if !ok {
			continue
		}
		path := prefix + name

		if _, hasDefault := sf.Tag.Lookup("default"); hasDefault && isNull(value) {
			*out = append(*out, FieldError{Field: path, Rule: "type", Message: "must not be null"})
			continue
		}

		if sf.Type.Kind() == reflect.Slice && sf.Type.Elem().Kind() == reflect.Struct {
			var elems []json.RawMessage
			if err := json.Unmarshal(value, &elems); err != nil {
				continue
			}
			for j, elem := range elems {
				collectNulls(elem, sf.Type.Elem(), fmt.Sprintf("%s[%d].", path, j), out)
			}
		}
	}
}

func isNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func jsonName(sf reflect.StructField) string {
	name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
