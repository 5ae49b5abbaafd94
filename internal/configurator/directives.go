// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configurator

import (
	"reflect"
	"strings"
)

// TagName is the struct tag holding field directives:
//
//	Token  string `cfg:"DISCORD_TOKEN,required"` // renamed and required
//	Shards int                                   // looked up as "Shards"
//	Cache  *Cache `cfg:"-"`                      // never bound
const TagName = "cfg"

const (
	ignoreDirective   = "-"
	requiredDirective = "required"
)

type fieldDescriptor struct {
	name     string
	key      string
	typ      reflect.Type
	required bool
	ignored  bool
}

func describe(field reflect.StructField) fieldDescriptor {
	d := fieldDescriptor{
		name: field.Name,
		key:  field.Name,
		typ:  field.Type,
	}

	tag, ok := field.Tag.Lookup(TagName)
	if !ok {
		return d
	}

	if tag == ignoreDirective {
		d.ignored = true
		return d
	}

	key, options, _ := strings.Cut(tag, ",")
	if key != "" {
		d.key = key
	}

	for option := range strings.SplitSeq(options, ",") {
		if strings.TrimSpace(option) == requiredDirective {
			d.required = true
		}
	}

	return d
}

func (d fieldDescriptor) fail(kind, cause error) *FieldError {
	return &FieldError{
		Field: d.name,
		Key:   d.key,
		Kind:  kind,
		Cause: cause,
	}
}
