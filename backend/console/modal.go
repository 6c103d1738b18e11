// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package console

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/omec-project/webconsole-ui/backend/metrics"
	"github.com/omec-project/webconsole-ui/configapi"
)

// ModalState is the create/edit dialog. Name is empty while creating.
type ModalState struct {
	Open   bool              `json:"open"`
	Type   string            `json:"type,omitempty"`
	Name   string            `json:"name,omitempty"`
	Title  string            `json:"title,omitempty"`
	Fields []configapi.Field `json:"fields,omitempty"`
	Form   configapi.Form    `json:"form,omitempty"`
}

func (s ModalState) IsEdit() bool {
	return s.Name != ""
}

type Modal struct {
	app   *App
	mu    sync.Mutex
	state ModalState
}

func (m *Modal) State() ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Modal) set(state ModalState) {
	m.mu.Lock()
	m.state = state
	m.mu.Unlock()
}

// ShowCreateForm opens the dialog in create mode for typ.
func (m *Modal) ShowCreateForm(ctx context.Context, typ string) (ModalState, error) {
	m.set(ModalState{Type: typ})
	mgr, err := m.app.Manager(typ)
	if err != nil {
		return m.State(), err
	}
	state := ModalState{
		Open:   true,
		Type:   typ,
		Title:  "Create " + mgr.DisplayName(),
		Fields: fields(ctx, mgr, false),
		Form:   configapi.Form{},
	}
	m.set(state)
	return state, nil
}

// EditItem opens the dialog in edit mode with the current values of name.
// A failed fetch is reported and leaves the dialog open with an empty form.
func (m *Modal) EditItem(ctx context.Context, typ, name string) (ModalState, error) {
	m.set(ModalState{Type: typ, Name: name})
	mgr, err := m.app.Manager(typ)
	if err != nil {
		return m.State(), err
	}
	state := ModalState{
		Open:   true,
		Type:   typ,
		Name:   name,
		Title:  fmt.Sprintf("Edit %s: %s", mgr.DisplayName(), name),
		Fields: fields(ctx, mgr, true),
		Form:   configapi.Form{},
	}
	doc, err := mgr.Get(ctx, name)
	if err != nil {
		m.app.Notifier.ApiError(err, "load item data")
		m.set(state)
		return state, err
	}
	state.Form = mgr.ToForm(doc)
	m.set(state)
	return state, nil
}

// SaveItem validates form and creates or updates the item depending on
// the dialog mode. On success the dialog is closed and the list reloaded;
// on failure the dialog keeps its state.
func (m *Modal) SaveItem(ctx context.Context, form configapi.Form) (*ListView, error) {
	state := m.State()
	mgr, err := m.app.Manager(state.Type)
	if err != nil {
		return nil, err
	}
	isEdit := state.IsEdit()

	if errs := mgr.Validate(form, isEdit); len(errs) > 0 {
		verr := &configapi.ValidationError{Errors: errs}
		m.app.Notifier.Error(verr.Error())
		return nil, verr
	}

	op, action := "create item", "created"
	if isEdit {
		op, action = "update item", "updated"
	}
	err = m.save(ctx, mgr, state.Name, form, isEdit)
	metrics.ObserveAction(strings.ReplaceAll(op, " ", "_"), err)
	if err != nil {
		state.Form = form
		m.set(state)
		m.app.Notifier.ApiError(err, op)
		return nil, err
	}
	m.app.Notifier.Success(fmt.Sprintf("%s %s successfully", mgr.DisplayName(), action))
	m.Hide()
	return m.app.reload(ctx, mgr), nil
}

func (m *Modal) save(ctx context.Context, mgr configapi.Manager, name string, form configapi.Form, isEdit bool) error {
	payload, err := mgr.ToPayload(form, isEdit)
	if err != nil {
		return err
	}
	if isEdit {
		return mgr.Update(ctx, name, payload)
	}
	return mgr.Create(ctx, payload)
}

// DeleteItem removes name and reloads the list of typ.
func (m *Modal) DeleteItem(ctx context.Context, typ, name string) (*ListView, error) {
	mgr, err := m.app.Manager(typ)
	if err != nil {
		return nil, err
	}
	err = mgr.Delete(ctx, name)
	metrics.ObserveAction("delete_item", err)
	if err != nil {
		m.app.Notifier.ApiError(err, "delete item")
		return nil, err
	}
	m.app.Notifier.Success(mgr.DisplayName() + " deleted successfully")
	return m.app.reload(ctx, mgr), nil
}

// Hide closes the dialog and forgets its mode.
func (m *Modal) Hide() {
	m.set(ModalState{})
}
