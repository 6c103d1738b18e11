// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package console

import (
	"context"
	"fmt"
	"sort"

	"github.com/omec-project/webconsole-ui/backend/logger"
	"github.com/omec-project/webconsole-ui/configapi"
)

const (
	DefaultSection = "device-groups"
	// SubscribersSection combines the K4 key list with the subscriber
	// create form.
	SubscribersSection = "subscribers"
)

var sectionManagers = map[string]string{
	"device-groups":         configapi.DeviceGroupsKey,
	"device-group-details":  configapi.DeviceGroupsKey,
	"network-slices":        configapi.NetworkSlicesKey,
	"network-slice-details": configapi.NetworkSlicesKey,
	"gnb-inventory":         configapi.GnbInventoryKey,
	"gnb-details":           configapi.GnbInventoryKey,
	"upf-inventory":         configapi.UpfInventoryKey,
	SubscribersSection:      "",
	"k4-keys":               configapi.K4ManagerKey,
	"k4-details":            configapi.K4ManagerKey,
	"subscribers-list":      configapi.SubscriberListKey,
	"subscriber-details":    configapi.SubscriberListKey,
}

var detailSections = map[string]bool{
	"device-group-details":  true,
	"network-slice-details": true,
	"gnb-details":           true,
	"k4-details":            true,
	"subscriber-details":    true,
}

// SectionView is what a section shows after navigation. Detail sections
// carry neither a list nor a form.
type SectionView struct {
	Section string            `json:"section"`
	List    *ListView         `json:"list,omitempty"`
	Fields  []configapi.Field `json:"fields,omitempty"`
}

// UnknownSectionError is returned by ShowSection for unrouted sections.
type UnknownSectionError struct {
	Section string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("Unknown section: %s", e.Section)
}

func Sections() []string {
	names := make([]string, 0, len(sectionManagers))
	for name := range sectionManagers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func IsDetailSection(section string) bool {
	return detailSections[section]
}

// ShowSection makes section current and loads its data.
func (a *App) ShowSection(ctx context.Context, section string) (*SectionView, error) {
	key, ok := sectionManagers[section]
	if !ok {
		return nil, &UnknownSectionError{Section: section}
	}
	a.setSection(section)
	view := &SectionView{Section: section}

	if detailSections[section] {
		return view, nil
	}

	if section == SubscribersSection {
		keys, err := a.K4.Load(ctx)
		if err != nil {
			logger.ConsoleLog.Warnf("failed to load K4 keys: %v", err)
		} else {
			view.List = a.listView(a.K4, keys)
		}
		view.Fields = fields(ctx, a.Subscribers, false)
		return view, nil
	}

	m, ok := a.Registry.Manager(key)
	if !ok {
		return nil, fmt.Errorf("no manager registered for section %s", section)
	}
	items, err := m.Load(ctx)
	if err != nil {
		return nil, err
	}
	view.List = a.listView(m, items)
	return view, nil
}
