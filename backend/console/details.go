// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package console

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/omec-project/webconsole-ui/backend/metrics"
	"github.com/omec-project/webconsole-ui/configapi"
)

var ErrNoDetails = errors.New("no item loaded in details view")

type detailRoute struct {
	details string
	list    string
}

// UPF has no details section of its own and stays on its list.
var detailRoutes = map[string]detailRoute{
	configapi.DeviceGroupType:  {"device-group-details", "device-groups"},
	configapi.NetworkSliceType: {"network-slice-details", "network-slices"},
	configapi.GnbType:          {"gnb-details", "gnb-inventory"},
	configapi.UpfType:          {"upf-inventory", "upf-inventory"},
	configapi.K4KeyType:        {"k4-details", "k4-keys"},
	configapi.SubscriberType:   {"subscriber-details", "subscribers-list"},
}

// DetailsState is the item shown in the details view.
type DetailsState struct {
	Type    string            `json:"type,omitempty"`
	Name    string            `json:"name,omitempty"`
	Title   string            `json:"title,omitempty"`
	Editing bool              `json:"editing"`
	Item    any               `json:"item,omitempty"`
	Form    configapi.Form    `json:"form,omitempty"`
	Fields  []configapi.Field `json:"fields,omitempty"`
}

type Details struct {
	app   *App
	mu    sync.Mutex
	state DetailsState
}

func (d *Details) State() DetailsState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// lowerName turns "Device Group" into "device group" and keeps
// acronyms such as gNB, UPF and K4 as they are.
func lowerName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		r := []rune(w)
		if len(r) > 1 && unicode.IsUpper(r[0]) && unicode.IsLower(r[1]) {
			words[i] = strings.ToLower(w)
		}
	}
	return strings.Join(words, " ")
}

// ShowDetails loads name into the details view and switches to the
// details section of typ.
func (d *Details) ShowDetails(ctx context.Context, typ, name string) (DetailsState, error) {
	mgr, err := d.app.Manager(typ)
	if err != nil {
		return DetailsState{}, err
	}
	doc, err := mgr.Get(ctx, name)
	if err != nil {
		d.app.Notifier.Error(fmt.Sprintf("Error loading %s details", lowerName(mgr.DisplayName())))
		return DetailsState{}, err
	}
	state := DetailsState{
		Type:   typ,
		Name:   name,
		Title:  fmt.Sprintf("%s: %s", mgr.DisplayName(), name),
		Item:   doc,
		Form:   mgr.ToForm(doc),
		Fields: fields(ctx, mgr, true),
	}
	d.mu.Lock()
	d.state = state
	d.mu.Unlock()
	d.app.setSection(detailRoutes[typ].details)
	return state, nil
}

// ToggleEdit switches between view and edit mode. A nil enable flips the
// current mode.
func (d *Details) ToggleEdit(enable *bool) (DetailsState, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state.Type == "" {
		return DetailsState{}, ErrNoDetails
	}
	if enable != nil {
		d.state.Editing = *enable
	} else {
		d.state.Editing = !d.state.Editing
	}
	return d.state, nil
}

// SaveEdit updates the shown item from form and reloads it.
func (d *Details) SaveEdit(ctx context.Context, form configapi.Form) (DetailsState, error) {
	current := d.State()
	if current.Type == "" {
		return DetailsState{}, ErrNoDetails
	}
	mgr, err := d.app.Manager(current.Type)
	if err != nil {
		return current, err
	}
	label := lowerName(mgr.DisplayName())

	if errs := mgr.Validate(form, true); len(errs) > 0 {
		verr := &configapi.ValidationError{Errors: errs}
		d.app.Notifier.Error(verr.Error())
		return current, verr
	}
	err = d.update(ctx, mgr, current.Name, form)
	metrics.ObserveAction("save_details", err)
	if err != nil {
		d.app.Notifier.Error(fmt.Sprintf("Failed to save %s: %v", label, err))
		return current, err
	}

	state, err := d.ShowDetails(ctx, current.Type, current.Name)
	if err != nil {
		return current, err
	}
	editing := false
	state, _ = d.ToggleEdit(&editing)
	d.app.Notifier.Success(fmt.Sprintf("%s updated successfully!", mgr.DisplayName()))
	return state, nil
}

func (d *Details) update(ctx context.Context, mgr configapi.Manager, name string, form configapi.Form) error {
	payload, err := mgr.ToPayload(form, true)
	if err != nil {
		return err
	}
	return mgr.Update(ctx, name, payload)
}

// DeleteFromDetails removes the shown item and goes back to its list.
func (d *Details) DeleteFromDetails(ctx context.Context) (*SectionView, error) {
	current := d.State()
	if current.Type == "" {
		return nil, ErrNoDetails
	}
	mgr, err := d.app.Manager(current.Type)
	if err != nil {
		return nil, err
	}
	err = mgr.Delete(ctx, current.Name)
	metrics.ObserveAction("delete_details", err)
	if err != nil {
		d.app.Notifier.Error(fmt.Sprintf("Failed to delete %s: %v", lowerName(mgr.DisplayName()), err))
		return nil, err
	}
	d.app.Notifier.Success(fmt.Sprintf("%s deleted successfully!", mgr.DisplayName()))

	d.mu.Lock()
	d.state = DetailsState{}
	d.mu.Unlock()
	return d.app.ShowSection(ctx, detailRoutes[current.Type].list)
}
