// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configurator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

func (c *configurator) Mirror(target any) error {
	value := reflect.ValueOf(target)
	if value.Kind() != reflect.Pointer || value.IsNil() || value.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}

	value = value.Elem()
	typ := value.Type()

	c.logger.Debug().Str("target", typ.String()).Msg("mirroring configuration")

	for i := range typ.NumField() {
		d := describe(typ.Field(i))
		if d.ignored {
			continue
		}

		if err := c.mirrorField(value.Field(i), d); err != nil {
			c.logger.Error().Err(err).
				Str("field", d.name).
				Str("key", d.key).
				Msg("configurator cannot mirror a field")
			return err
		}
	}

	return nil
}

func (c *configurator) mirrorField(field reflect.Value, d fieldDescriptor) error {
	if !field.CanSet() {
		return d.fail(ErrAccessFailure, nil)
	}

	raw, src, ok := c.lookup(d.key)
	if !ok {
		if d.required {
			return d.fail(ErrMissingRequiredValue, nil)
		}

		c.logger.Debug().Str("field", d.name).Str("key", d.key).Str("source", string(src)).Msg("field left unchanged")
		return nil
	}

	converted, err := c.convert(d, raw)
	if err != nil {
		return err
	}

	field.Set(converted)
	c.logger.Debug().Str("field", d.name).Str("key", d.key).Str("source", string(src)).Msg("field mirrored")

	return nil
}

func (c *configurator) convert(d fieldDescriptor, raw string) (reflect.Value, error) {
	typ := d.typ

	if isPredeclared(typ) {
		converted := reflect.New(typ).Elem()

		switch typ.Kind() {
		case reflect.Bool:
			// anything but "true" is false, never an error
			converted.SetBool(strings.EqualFold(raw, "true"))
			return converted, nil
		case reflect.String:
			converted.SetString(raw)
			return converted, nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(raw, 10, typ.Bits())
			if err != nil {
				return reflect.Value{}, d.fail(ErrConversionFailure, err)
			}
			converted.SetInt(n)
			return converted, nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			n, err := strconv.ParseUint(raw, 10, typ.Bits())
			if err != nil {
				return reflect.Value{}, d.fail(ErrConversionFailure, err)
			}
			converted.SetUint(n)
			return converted, nil
		case reflect.Float32, reflect.Float64:
			f, err := strconv.ParseFloat(raw, typ.Bits())
			if err != nil {
				return reflect.Value{}, d.fail(ErrConversionFailure, err)
			}
			converted.SetFloat(f)
			return converted, nil
		}
	}

	adapter, ok := c.adapters.Get(typ)
	if !ok {
		return reflect.Value{}, d.fail(ErrUnsupportedType, nil)
	}

	result, err := c.adapt(adapter, d.key, raw)
	if err != nil {
		return reflect.Value{}, d.fail(ErrConversionFailure, err)
	}

	if result == nil {
		return reflect.Zero(typ), nil
	}

	converted := reflect.ValueOf(result)
	if !converted.Type().AssignableTo(typ) {
		return reflect.Value{}, d.fail(ErrConversionFailure,
			fmt.Errorf("adapter returned %s, field is %s", converted.Type(), typ))
	}

	return converted, nil
}

func (c *configurator) adapt(adapter Adapter, key, raw string) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("adapter panicked: %v", r)
		}
	}()

	return adapter(key, raw, c)
}

// isPredeclared reports whether t is one of the language's own named types
// (bool, int, string, ...). Named types such as time.Duration are not.
func isPredeclared(t reflect.Type) bool {
	return t.PkgPath() == "" && t.Name() != ""
}
