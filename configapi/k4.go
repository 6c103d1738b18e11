// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package configapi

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/omec-project/webconsole-ui/backend/apiclient"
	"github.com/omec-project/webconsole-ui/configmodels"
)

const k4Endpoint = "/k4opt"

type k4Form struct {
	Sno   string `form:"k4_sno"`
	Label string `form:"key_label"`
	Type  string `form:"key_type"`
	K4    string `form:"k4"`
}

// K4Manager handles K4 keys. A key is identified by its serial number for
// reads and updates, and by serial number and label for deletes; names
// are written "sno" or "sno/label".
type K4Manager struct {
	resourceManager
}

func NewK4Manager(client *apiclient.Client, apiBase string) *K4Manager {
	return &K4Manager{
		resourceManager: resourceManager{
			resource:    client.Resource(apiBase, k4Endpoint),
			typ:         K4KeyType,
			displayName: "K4 Key",
		},
	}
}

func splitK4Name(name string) (sno, label string) {
	sno, label, _ = strings.Cut(name, "/")
	return sno, label
}

func (m *K4Manager) ItemName(doc any) string {
	if k4, ok := doc.(*configmodels.K4); ok {
		return fmt.Sprintf("%d/%s", k4.K4_SNO, k4.K4_Label)
	}
	return ""
}

func (m *K4Manager) Load(ctx context.Context) ([]any, error) {
	keys, err := m.Keys(ctx)
	if err != nil {
		return nil, err
	}
	return toAny(keys), nil
}

func (m *K4Manager) Keys(ctx context.Context) ([]*configmodels.K4, error) {
	raw, err := m.resource.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	keys := make([]*configmodels.K4, 0, len(raw))
	for _, data := range raw {
		k4, err := configmodels.Decode[configmodels.K4](data)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k4)
	}
	return keys, nil
}

func (m *K4Manager) Get(ctx context.Context, name string) (any, error) {
	sno, _ := splitK4Name(name)
	body, err := m.resource.Get(ctx, sno)
	if err != nil {
		return nil, err
	}
	return m.FromResponse(body)
}

func (m *K4Manager) Create(ctx context.Context, payload any) error {
	_, err := m.resource.Create(ctx, payload)
	return err
}

func (m *K4Manager) Update(ctx context.Context, name string, payload any) error {
	sno, _ := splitK4Name(name)
	_, err := m.resource.Update(ctx, payload, sno)
	return err
}

// Delete removes /k4opt/{sno}/{label}. When name carries no label it is
// looked up first.
func (m *K4Manager) Delete(ctx context.Context, name string) error {
	sno, label := splitK4Name(name)
	if label == "" {
		doc, err := m.Get(ctx, sno)
		if err != nil {
			return err
		}
		label = doc.(*configmodels.K4).K4_Label
	}
	_, err := m.resource.Delete(ctx, sno, label)
	return err
}

func (m *K4Manager) FromResponse(data []byte) (any, error) {
	return configmodels.Decode[configmodels.K4](data)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// Validate checks serial number, label and type on create only; the key
// itself is always checked.
func (m *K4Manager) Validate(form Form, isEdit bool) []string {
	var f k4Form
	if err := decodeForm(form, &f); err != nil {
		return []string{err.Error()}
	}
	errors := []string{}
	if !isEdit {
		if !isValidK4Sno(f.Sno) {
			errors = append(errors, "K4 SNO is required and must be between 0-255.")
		}
		if f.Label == "" {
			errors = append(errors, "Key Label is required.")
		} else if !contains(configmodels.K4Labels, f.Label) {
			errors = append(errors, fmt.Sprintf("Key Label must be one of %s.", strings.Join(configmodels.K4Labels, ", ")))
		}
		if f.Type == "" {
			errors = append(errors, "Key Type is required.")
		} else if !contains(configmodels.K4Types, f.Type) {
			errors = append(errors, fmt.Sprintf("Key Type must be one of %s.", strings.Join(configmodels.K4Types, ", ")))
		}
	}
	if !isHex(f.K4) {
		errors = append(errors, "K4 Key must contain only hexadecimal characters.")
	}
	return errors
}

// ToPayload lowercases the key.
func (m *K4Manager) ToPayload(form Form, isEdit bool) (any, error) {
	var f k4Form
	if err := decodeForm(form, &f); err != nil {
		return nil, err
	}
	sno, ok := parseInt(f.Sno)
	if !ok || sno < 0 || sno > MAX_K4_SNO {
		return nil, fmt.Errorf("invalid k4_sno %q", f.Sno)
	}
	return &configmodels.K4{
		K4:       strings.ToLower(f.K4),
		K4_SNO:   byte(sno),
		K4_Label: f.Label,
		K4_Type:  f.Type,
	}, nil
}

func (m *K4Manager) ToForm(doc any) Form {
	k4, ok := doc.(*configmodels.K4)
	if !ok {
		return Form{}
	}
	return Form{
		"k4_sno":    strconv.Itoa(int(k4.K4_SNO)),
		"key_label": k4.K4_Label,
		"key_type":  k4.K4_Type,
		"k4":        k4.K4,
	}
}

func stringOptions(values []string) []Option {
	options := make([]Option, 0, len(values))
	for _, v := range values {
		options = append(options, Option{Value: v, Label: v})
	}
	return options
}

func (m *K4Manager) Fields(isEdit bool) []Field {
	labelHelp, typeHelp := "Select the encryption key label", "Select the encryption algorithm type"
	if isEdit {
		labelHelp, typeHelp = "Key Label cannot be changed in edit mode", "Key Type cannot be changed in edit mode"
	}
	return []Field{
		{
			Id: "k4_sno", Label: "K4 Serial Number (SNO)", Kind: NumberField, Required: !isEdit, ReadOnly: isEdit,
			Help: "Value between 0-255 (byte)", Min: intPtr(0), Max: intPtr(MAX_K4_SNO),
		},
		{Id: "key_label", Label: "Key Label", Kind: SelectField, Required: !isEdit, ReadOnly: isEdit, Help: labelHelp, Options: stringOptions(configmodels.K4Labels)},
		{Id: "key_type", Label: "Key Type", Kind: SelectField, Required: !isEdit, ReadOnly: isEdit, Help: typeHelp, Options: stringOptions(configmodels.K4Types)},
		{Id: "k4", Label: "K4 Key", Kind: TextField, Required: true, Placeholder: "e.g., 00112233445566778899aabbccddeeff", Help: "Hexadecimal key value"},
	}
}

func (m *K4Manager) Render(items []any) Table {
	table := Table{
		Headers: []string{"Serial Number (SNO)", "Key Label", "Key Type", "K4 Key"},
		Rows:    [][]string{},
		Empty:   "No K4 keys found. Add one to provision a subscriber.",
	}
	for _, item := range items {
		k4, ok := item.(*configmodels.K4)
		if !ok {
			continue
		}
		key := k4.K4
		if strings.TrimSpace(key) == "" {
			key = "N/S"
		}
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(int(k4.K4_SNO)), orNA(k4.K4_Label), orNA(k4.K4_Type), key,
		})
	}
	return table
}

// K4Option renders one key as a subscriber form option.
func K4Option(k4 *configmodels.K4) Option {
	prefix := k4.K4
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	sno := strconv.Itoa(int(k4.K4_SNO))
	return Option{Value: sno, Label: fmt.Sprintf("SNO %s - Key: %s...", sno, prefix)}
}

// Options lists the keys selectable on a subscriber.
func (m *K4Manager) Options(ctx context.Context) ([]Option, error) {
	keys, err := m.Keys(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]Option, 0, len(keys))
	for _, k4 := range keys {
		options = append(options, K4Option(k4))
	}
	return options, nil
}
