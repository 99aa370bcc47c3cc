package models

import (
	"fmt"
	"reflect"
	"strconv"
)

// ApplyDefaults fills every empty string and nil pointer field that has a
// `default` tag, walking into nested structs and slices of structs.
// v must be a pointer to a struct.
func ApplyDefaults(v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("apply defaults: want pointer to struct, got %T", v)
	}
	return applyStruct(rv.Elem())
}

func applyStruct(sv reflect.Value) error {
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		field := sv.Field(i)
		sf := st.Field(i)
		if !field.CanSet() {
			continue
		}

		if def, ok := sf.Tag.Lookup("default"); ok {
			if err := setDefault(field, def); err != nil {
				return fmt.Errorf("default for %s: %w", sf.Name, err)
			}
		}

		switch field.Kind() {
		case reflect.Struct:
			if err := applyStruct(field); err != nil {
				return err
			}
		case reflect.Slice:
			if field.Type().Elem().Kind() != reflect.Struct {
				continue
			}
			for j := 0; j < field.Len(); j++ {
				if err := applyStruct(field.Index(j)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func setDefault(field reflect.Value, def string) error {
	switch field.Kind() {
	case reflect.String:
		if field.String() == "" {
			field.SetString(def)
		}
		return nil
	case reflect.Ptr:
		if !field.IsNil() {
			return nil
		}
		value, err := parseDefault(field.Type().Elem(), def)
		if err != nil {
			return err
		}
		ptr := reflect.New(field.Type().Elem())
		ptr.Elem().Set(value)
		field.Set(ptr)
		return nil
	default:
		return fmt.Errorf("unsupported kind %s", field.Kind())
	}
}

func parseDefault(t reflect.Type, def string) (reflect.Value, error) {
	v := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.String:
		v.SetString(def)
	case reflect.Bool:
		b, err := strconv.ParseBool(def)
		if err != nil {
			return v, err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(def, 10, 64)
		if err != nil {
			return v, err
		}
		v.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(def, 64)
		if err != nil {
			return v, err
		}
		v.SetFloat(f)
	default:
		return v, fmt.Errorf("unsupported kind %s", t.Kind())
	}
	return v, nil
}
