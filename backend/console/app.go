// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package console

import (
	"context"
	"fmt"
	"sync"

	"github.com/omec-project/webconsole-ui/backend/apiclient"
	"github.com/omec-project/webconsole-ui/backend/factory"
	"github.com/omec-project/webconsole-ui/backend/logger"
	"github.com/omec-project/webconsole-ui/configapi"
)

// App is the console state shared by the HTTP service and the CLI: the
// entity managers, the current section, the modal, the details view and
// the notification feed.
type App struct {
	Config   *factory.Config
	Client   *apiclient.Client
	Registry *configapi.Registry
	Notifier *Notifier

	DeviceGroups  *configapi.DeviceGroupManager
	NetworkSlices *configapi.NetworkSliceManager
	GnbInventory  *configapi.GnbManager
	UpfInventory  *configapi.UpfManager
	K4            *configapi.K4Manager
	Subscribers   *configapi.SubscriberListManager

	Modal   *Modal
	Details *Details

	mu             sync.Mutex
	currentSection string
}

// NewApp builds the backend client from cfg and wires every manager.
func NewApp(cfg *factory.Config) (*App, error) {
	if cfg == nil || cfg.Configuration == nil || cfg.Configuration.Backend == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	client, err := apiclient.NewFromConfig(cfg.Configuration.Backend)
	if err != nil {
		return nil, err
	}
	return NewAppWithClient(cfg, client), nil
}

func NewAppWithClient(cfg *factory.Config, client *apiclient.Client) *App {
	c := cfg.Configuration
	b := c.Backend
	a := &App{
		Config:         cfg,
		Client:         client,
		Registry:       configapi.NewRegistry(),
		Notifier:       NewNotifier(DefaultFeedSize),
		currentSection: DefaultSection,
	}
	a.DeviceGroups = configapi.NewDeviceGroupManager(client, b.ConfigApiBase, c.DetailConcurrency)
	a.NetworkSlices = configapi.NewNetworkSliceManager(client, b.ConfigApiBase, c.DetailConcurrency, a.DeviceGroups)
	a.GnbInventory = configapi.NewGnbManager(client, b.ConfigApiBase)
	a.UpfInventory = configapi.NewUpfManager(client, b.ConfigApiBase)
	a.K4 = configapi.NewK4Manager(client, b.SubscriberApiBase)
	a.Subscribers = configapi.NewSubscriberListManager(client, b.SubscriberApiBase, c.SubscriberPageSize, a.K4)

	a.Registry.Register(configapi.DeviceGroupsKey, a.DeviceGroups)
	a.Registry.Register(configapi.NetworkSlicesKey, a.NetworkSlices)
	a.Registry.Register(configapi.GnbInventoryKey, a.GnbInventory)
	a.Registry.Register(configapi.UpfInventoryKey, a.UpfInventory)
	a.Registry.Register(configapi.K4ManagerKey, a.K4)
	a.Registry.Register(configapi.SubscriberListKey, a.Subscribers)

	a.Modal = &Modal{app: a}
	a.Details = &Details{app: a}
	logger.AppLog.Infof("console ready for backend %s", client.BaseUrl())
	return a
}

func (a *App) CurrentSection() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentSection
}

func (a *App) setSection(section string) {
	a.mu.Lock()
	a.currentSection = section
	a.mu.Unlock()
}

// Manager resolves an entity type and reports unknown ones on the feed.
func (a *App) Manager(typ string) (configapi.Manager, error) {
	m, err := a.Registry.ByType(typ)
	if err != nil {
		a.Notifier.Error(err.Error())
		return nil, err
	}
	return m, nil
}

// reload fetches the list of m again after a mutation. A failed reload
// is logged; the mutation itself already succeeded.
func (a *App) reload(ctx context.Context, m configapi.Manager) *ListView {
	items, err := m.Load(ctx)
	if err != nil {
		logger.ConsoleLog.Warnf("failed to reload %s list: %v", m.Type(), err)
		return nil
	}
	return a.listView(m, items)
}

// ListView is a rendered entity list.
type ListView struct {
	Type  string              `json:"type"`
	Table configapi.Table     `json:"table"`
	Meta  *configapi.ListMeta `json:"meta,omitempty"`
}

func (a *App) listView(m configapi.Manager, items []any) *ListView {
	view := &ListView{Type: m.Type(), Table: m.Render(items)}
	if subs, ok := m.(*configapi.SubscriberListManager); ok {
		meta := subs.Meta()
		view.Meta = &meta
	}
	return view
}

// fields returns the form descriptors of m, with backend-dependent
// options filled in when m needs them.
func fields(ctx context.Context, m configapi.Manager, isEdit bool) []configapi.Field {
	f := m.Fields(isEdit)
	if p, ok := m.(configapi.FieldPreparer); ok {
		f = p.PrepareFields(ctx, f)
	}
	return f
}
