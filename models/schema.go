package models

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"go-messease/database"
)

// JSONSchema is a JSON Schema object as served by GET /schema.
type JSONSchema map[string]interface{}

var registry = map[string]interface{}{
	database.UserCollection:     User{},
	database.MenuItemCollection: MenuItem{},
	database.OrderCollection:    Order{},
	database.PaymentCollection:  Payment{},
}

// Schemas describes every record kind, keyed by collection name.
// It is for discovery only; validation never reads it.
func Schemas() map[string]JSONSchema {
	out := make(map[string]JSONSchema, len(registry))
	for name, model := range registry {
		out[name] = structSchema(reflect.TypeOf(model))
	}
	return out
}

var timeType = reflect.TypeOf(time.Time{})

func structSchema(t reflect.Type) JSONSchema {
	properties := JSONSchema{}
	required := []string{}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name := jsonName(sf)
		if name == "" {
			continue
		}

		prop := typeSchema(sf.Type)
		if d := sf.Tag.Get("description"); d != "" {
			prop["description"] = d
		}

		optional := true
		rules := strings.Split(sf.Tag.Get("validate"), ",")
		for _, rule := range rules {
			key, param := rule, ""
			if j := strings.IndexByte(rule, '='); j >= 0 {
				key, param = rule[:j], rule[j+1:]
			}
			switch key {
			case "required":
				required = append(required, name)
				optional = false
			case "gte":
				if f, err := strconv.ParseFloat(param, 64); err == nil {
					prop["minimum"] = f
				}
			case "oneof":
				prop["enum"] = strings.Fields(param)
			}
		}

		if def, ok := sf.Tag.Lookup("default"); ok {
			prop["default"] = defaultValue(sf.Type, def)
			optional = false
		}
		if !optional {
			delete(prop, "nullable")
		}
		properties[name] = prop
	}

	schema := JSONSchema{
		"title":      t.Name(),
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func typeSchema(t reflect.Type) JSONSchema {
	nullable := false
	if t.Kind() == reflect.Ptr {
		nullable = true
		t = t.Elem()
	}

	var s JSONSchema
	switch {
	case t == timeType:
		s = JSONSchema{"type": "string", "format": "date-time"}
	case t.Kind() == reflect.String:
		s = JSONSchema{"type": "string"}
	case t.Kind() == reflect.Bool:
		s = JSONSchema{"type": "boolean"}
	case t.Kind() >= reflect.Int && t.Kind() <= reflect.Uint64:
		s = JSONSchema{"type": "integer"}
	case t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64:
		s = JSONSchema{"type": "number"}
	case t.Kind() == reflect.Slice:
		s = JSONSchema{"type": "array", "items": typeSchema(t.Elem())}
	case t.Kind() == reflect.Struct:
		s = structSchema(t)
	default:
		s = JSONSchema{}
	}

	if nullable {
		s["nullable"] = true
	}
	return s
}

func defaultValue(t reflect.Type, def string) interface{} {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	v, err := parseDefault(t, def)
	if err != nil {
		return def
	}
	return v.Interface()
}
