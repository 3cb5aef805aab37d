// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package failure

import (
	"fmt"
	"strconv"
	"strings"
)

// Description is the human-readable part of a failure: a short text and the
// ordered key/value fields that give it context. Values are kept as strings
// so that descriptions compare and print the same way everywhere.
type Description struct {
	Text   string
	Fields []Field
}

// Field is one piece of context of a description.
type Field struct {
	Key   string
	Value string
}

// FieldFunc adds a field to a description.
type FieldFunc func(*Description)

func NewDescription(text string, fields ...FieldFunc) Description {
	d := Description{
		Text: text,
	}
	for _, field := range fields {
		field(&d)
	}
	return d
}

func (d Description) String() string {
	if len(d.Fields) == 0 {
		return d.Text
	}
	parts := make([]string, 0, len(d.Fields))
	for _, field := range d.Fields {
		parts = append(parts, field.Key+": "+field.Value)
	}
	return fmt.Sprintf("%s (%s)", d.Text, strings.Join(parts, ", "))
}

func (d *Description) add(key string, value string) {
	d.Fields = append(d.Fields, Field{Key: key, Value: value})
}

func WithErr(err error) FieldFunc {
	return func(d *Description) {
		d.add("error", err.Error())
	}
}

func WithInt(key string, val int) FieldFunc {
	return func(d *Description) {
		d.add(key, strconv.Itoa(val))
	}
}

func WithUint64(key string, val uint64) FieldFunc {
	return func(d *Description) {
		d.add(key, strconv.FormatUint(val, 10))
	}
}

func WithString(key string, val string) FieldFunc {
	return func(d *Description) {
		d.add(key, val)
	}
}

// WithStrings adds a list of values, rendered as a bracketed list.
func WithStrings(key string, vals ...string) FieldFunc {
	return func(d *Description) {
		d.add(key, "["+strings.Join(vals, " ")+"]")
	}
}
