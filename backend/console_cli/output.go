// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package console_cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/omec-project/webconsole-ui/configapi"
)

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func renderTable(w io.Writer, t configapi.Table) {
	if len(t.Rows) == 0 && t.Empty != "" {
		fmt.Fprintln(w, t.Empty)
		return
	}
	table := newTable(w)
	table.SetHeader(t.Headers)
	table.AppendBulk(t.Rows)
	table.Render()
}

// renderForm prints one row per field, in field order, followed by any
// form value without a field descriptor.
func renderForm(w io.Writer, fields []configapi.Field, form configapi.Form) {
	table := newTable(w)
	table.SetHeader([]string{"Field", "Value"})
	seen := map[string]bool{}
	for _, f := range fields {
		seen[f.Id] = true
		if v, ok := form[f.Id]; ok {
			table.Append([]string{f.Label, formatValue(v)})
		}
	}
	rest := []string{}
	for k := range form {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		table.Append([]string{k, formatValue(form[k])})
	}
	table.Render()
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
