// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package configapi

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Manager is the per-entity contract used by the console: one REST
// resource, its flat form and the mapping between both.
type Manager interface {
	Type() string
	DisplayName() string
	// ItemName returns the identity used to address doc in Get, Update and Delete.
	ItemName(doc any) string

	Load(ctx context.Context) ([]any, error)
	Get(ctx context.Context, name string) (any, error)
	Create(ctx context.Context, payload any) error
	Update(ctx context.Context, name string, payload any) error
	Delete(ctx context.Context, name string) error

	Validate(form Form, isEdit bool) []string
	ToPayload(form Form, isEdit bool) (any, error)
	FromResponse(data []byte) (any, error)
	ToForm(doc any) Form
	Fields(isEdit bool) []Field
	Render(items []any) Table
}

// FieldPreparer is implemented by managers whose form needs backend data,
// such as select options, before it is shown.
type FieldPreparer interface {
	PrepareFields(ctx context.Context, fields []Field) []Field
}

// ValidationError carries the messages produced by Manager.Validate.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "\n")
}

const (
	DeviceGroupType  = "device-group"
	NetworkSliceType = "network-slice"
	GnbType          = "gnb"
	UpfType          = "upf"
	K4KeyType        = "k4-key"
	SubscriberType   = "subscriber"
)

// Manager keys, one per entity.
const (
	DeviceGroupsKey   = "deviceGroups"
	NetworkSlicesKey  = "networkSlices"
	GnbInventoryKey   = "gnbInventory"
	UpfInventoryKey   = "upfInventory"
	K4ManagerKey      = "k4Manager"
	SubscriberListKey = "subscriberListManager"
)

var typeMapping = map[string]string{
	DeviceGroupType:  DeviceGroupsKey,
	NetworkSliceType: NetworkSlicesKey,
	GnbType:          GnbInventoryKey,
	UpfType:          UpfInventoryKey,
	K4KeyType:        K4ManagerKey,
	SubscriberType:   SubscriberListKey,
}

// AllTypes lists every entity type the console knows, sorted.
func AllTypes() []string {
	types := make([]string, 0, len(typeMapping))
	for typ := range typeMapping {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}

// Registry holds one manager per key.
type Registry struct {
	managers map[string]Manager
}

func NewRegistry() *Registry {
	return &Registry{managers: map[string]Manager{}}
}

func (r *Registry) Register(key string, m Manager) {
	r.managers[key] = m
}

func (r *Registry) Manager(key string) (Manager, bool) {
	m, ok := r.managers[key]
	return m, ok
}

// UnknownTypeError is returned for entity types with no manager.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("Unknown type: %s", e.Type)
}

// ByType resolves an entity type tag such as "device-group".
func (r *Registry) ByType(typ string) (Manager, error) {
	key, ok := typeMapping[typ]
	if !ok {
		return nil, &UnknownTypeError{Type: typ}
	}
	m, ok := r.managers[key]
	if !ok {
		return nil, &UnknownTypeError{Type: typ}
	}
	return m, nil
}

// Types lists the registered entity types in a stable order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(typeMapping))
	for typ, key := range typeMapping {
		if _, ok := r.managers[key]; ok {
			types = append(types, typ)
		}
	}
	sort.Strings(types)
	return types
}
