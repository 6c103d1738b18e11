// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package configapi

import (
	"context"
	"fmt"
	"strconv"

	"github.com/omec-project/webconsole-ui/backend/apiclient"
	"github.com/omec-project/webconsole-ui/configmodels"
)

const (
	gnbEndpoint = "/inventory/gnb"
	upfEndpoint = "/inventory/upf"
)

type gnbForm struct {
	Name string `form:"name"`
	Tac  string `form:"tac"`
}

type GnbManager struct {
	resourceManager
}

func NewGnbManager(client *apiclient.Client, apiBase string) *GnbManager {
	return &GnbManager{
		resourceManager: resourceManager{
			resource:    client.Resource(apiBase, gnbEndpoint),
			typ:         GnbType,
			displayName: "gNB",
		},
	}
}

func (m *GnbManager) ItemName(doc any) string {
	if gnb, ok := doc.(*configmodels.Gnb); ok {
		return gnb.Name
	}
	return ""
}

func (m *GnbManager) Load(ctx context.Context) ([]any, error) {
	raw, err := m.resource.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	items := make([]any, 0, len(raw))
	for _, data := range raw {
		gnb, err := configmodels.Decode[configmodels.Gnb](data)
		if err != nil {
			return nil, err
		}
		items = append(items, gnb)
	}
	return items, nil
}

func (m *GnbManager) Get(ctx context.Context, name string) (any, error) {
	body, err := m.resource.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return m.FromResponse(body)
}

// Create posts the gNB to /inventory/gnb/{name}.
func (m *GnbManager) Create(ctx context.Context, payload any) error {
	gnb, ok := payload.(*configmodels.Gnb)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", payload)
	}
	_, err := m.resource.Create(ctx, gnb, gnb.Name)
	return err
}

func (m *GnbManager) FromResponse(data []byte) (any, error) {
	return configmodels.Decode[configmodels.Gnb](data)
}

func (m *GnbManager) Validate(form Form, isEdit bool) []string {
	var f gnbForm
	if err := decodeForm(form, &f); err != nil {
		return []string{err.Error()}
	}
	errors := []string{}
	if blank(f.Name) {
		errors = append(errors, "gNB name is required")
	}
	if !blank(f.Tac) && !isValidGnbTac(f.Tac) {
		errors = append(errors, fmt.Sprintf("TAC must be between %d and %d", MIN_TAC, MAX_TAC))
	}
	return errors
}

// ToPayload only sets tac when one was given.
func (m *GnbManager) ToPayload(form Form, isEdit bool) (any, error) {
	var f gnbForm
	if err := decodeForm(form, &f); err != nil {
		return nil, err
	}
	gnb := &configmodels.Gnb{Name: f.Name}
	if tac, ok := parseInt(f.Tac); ok {
		gnb.Tac = int32(tac)
	}
	return gnb, nil
}

func (m *GnbManager) ToForm(doc any) Form {
	gnb, ok := doc.(*configmodels.Gnb)
	if !ok {
		return Form{}
	}
	return Form{"name": gnb.Name, "tac": formInt(int64(gnb.Tac))}
}

func (m *GnbManager) Fields(isEdit bool) []Field {
	return []Field{
		{Id: "name", Label: "gNB Name", Kind: TextField, Required: true, ReadOnly: isEdit},
		{
			Id: "tac", Label: "TAC (Tracking Area Code)", Kind: NumberField, Placeholder: "e.g., 1",
			Help: "Optional: Integer value between 1 and 16777215", Min: intPtr(MIN_TAC), Max: intPtr(MAX_TAC),
		},
	}
}

func (m *GnbManager) Render(items []any) Table {
	table := Table{Headers: []string{"Name", "TAC"}, Rows: [][]string{}, Empty: "No gNBs found"}
	for _, item := range items {
		gnb, ok := item.(*configmodels.Gnb)
		if !ok {
			continue
		}
		tac := "N/A"
		if gnb.Tac != 0 {
			tac = strconv.Itoa(int(gnb.Tac))
		}
		table.Rows = append(table.Rows, []string{orNA(gnb.Name), tac})
	}
	return table
}

type upfForm struct {
	Hostname string `form:"hostname"`
	Port     string `form:"port"`
}

type UpfManager struct {
	resourceManager
}

func NewUpfManager(client *apiclient.Client, apiBase string) *UpfManager {
	return &UpfManager{
		resourceManager: resourceManager{
			resource:    client.Resource(apiBase, upfEndpoint),
			typ:         UpfType,
			displayName: "UPF",
		},
	}
}

func (m *UpfManager) ItemName(doc any) string {
	if upf, ok := doc.(*configmodels.Upf); ok {
		return upf.Hostname
	}
	return ""
}

func (m *UpfManager) Load(ctx context.Context) ([]any, error) {
	raw, err := m.resource.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	items := make([]any, 0, len(raw))
	for _, data := range raw {
		upf, err := configmodels.Decode[configmodels.Upf](data)
		if err != nil {
			return nil, err
		}
		items = append(items, upf)
	}
	return items, nil
}

func (m *UpfManager) Get(ctx context.Context, name string) (any, error) {
	body, err := m.resource.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return m.FromResponse(body)
}

// Create posts the UPF to /inventory/upf/{hostname}.
func (m *UpfManager) Create(ctx context.Context, payload any) error {
	upf, ok := payload.(*configmodels.Upf)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", payload)
	}
	_, err := m.resource.Create(ctx, upf, upf.Hostname)
	return err
}

func (m *UpfManager) FromResponse(data []byte) (any, error) {
	return configmodels.Decode[configmodels.Upf](data)
}

func (m *UpfManager) Validate(form Form, isEdit bool) []string {
	var f upfForm
	if err := decodeForm(form, &f); err != nil {
		return []string{err.Error()}
	}
	errors := []string{}
	if blank(f.Hostname) {
		errors = append(errors, "UPF hostname is required")
	}
	if blank(f.Port) {
		errors = append(errors, "Port is required")
	} else if !isValidUpfPort(f.Port) {
		errors = append(errors, "Port must be a number between 0 and 65535")
	}
	return errors
}

func (m *UpfManager) ToPayload(form Form, isEdit bool) (any, error) {
	var f upfForm
	if err := decodeForm(form, &f); err != nil {
		return nil, err
	}
	return &configmodels.Upf{Hostname: f.Hostname, Port: f.Port}, nil
}

func (m *UpfManager) ToForm(doc any) Form {
	upf, ok := doc.(*configmodels.Upf)
	if !ok {
		return Form{}
	}
	return Form{"hostname": upf.Hostname, "port": upf.Port}
}

func (m *UpfManager) Fields(isEdit bool) []Field {
	return []Field{
		{Id: "hostname", Label: "UPF Hostname", Kind: TextField, Required: true, ReadOnly: isEdit},
		{Id: "port", Label: "Port", Kind: TextField, Required: true, Placeholder: "e.g., 8805", Help: "Port number as string"},
	}
}

func (m *UpfManager) Render(items []any) Table {
	table := Table{Headers: []string{"Hostname", "Port"}, Rows: [][]string{}, Empty: "No UPFs found"}
	for _, item := range items {
		upf, ok := item.(*configmodels.Upf)
		if !ok {
			continue
		}
		table.Rows = append(table.Rows, []string{orNA(upf.Hostname), orNA(upf.Port)})
	}
	return table
}
