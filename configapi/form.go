// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package configapi

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Form is the flat field set of a create or edit form, keyed by field id.
// Values may be strings, numbers, lists or nested row objects.
type Form map[string]any

type FieldKind string

const (
	TextField        FieldKind = "text"
	NumberField      FieldKind = "number"
	TextAreaField    FieldKind = "textarea"
	SelectField      FieldKind = "select"
	MultiSelectField FieldKind = "multiselect"
	// ListField is a repeated group of sub-fields (gNodeBs, UPFs, rules).
	ListField FieldKind = "list"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Field struct {
	Id          string    `json:"id"`
	Label       string    `json:"label"`
	Kind        FieldKind `json:"kind"`
	Section     string    `json:"section,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Help        string    `json:"help,omitempty"`
	Required    bool      `json:"required,omitempty"`
	ReadOnly    bool      `json:"readOnly,omitempty"`
	Min         *int      `json:"min,omitempty"`
	Max         *int      `json:"max,omitempty"`
	Options     []Option  `json:"options,omitempty"`
	Item        []Field   `json:"item,omitempty"`
}

func intPtr(i int) *int {
	return &i
}

// Table is the tabular projection of a list of documents.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
	Empty   string     `json:"empty,omitempty"`
}

// decodeForm copies form into out using the `form` struct tags. Numbers
// and strings are converted into each other as needed.
func decodeForm(form Form, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "form",
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(map[string]any(form)); err != nil {
		return fmt.Errorf("invalid form data: %w", err)
	}
	return nil
}

var leadingInt = regexp.MustCompile(`^\s*[+-]?\d+`)

// parseInt reads the leading integer of s the way a browser number input
// is read: "1460" and "1460 bytes" both give 1460.
func parseInt(s string) (int64, bool) {
	m := leadingInt.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(m), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// intOr returns the parsed value of s, or def when s is missing, not a
// number or zero.
func intOr(s string, def int64) int64 {
	n, ok := parseInt(s)
	if !ok || n == 0 {
		return def
	}
	return n
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
