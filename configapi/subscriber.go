// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package configapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/omec-project/webconsole-ui/backend/apiclient"
	"github.com/omec-project/webconsole-ui/backend/logger"
	"github.com/omec-project/webconsole-ui/configmodels"
)

const subscriberEndpoint = "/subscriber"

// ListState is the query of the subscriber list view.
type ListState struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	PlmnID string `json:"plmnID"`
	Q      string `json:"q"`
	UeId   string `json:"ueId"`
}

// ListMeta describes the page last returned by the backend.
type ListMeta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Filters are the list controls applied by the operator.
type Filters struct {
	Q      string `json:"q"`
	UeId   string `json:"ueId"`
	PlmnID string `json:"plmnID"`
	Limit  int    `json:"limit"`
}

type subscriberForm struct {
	UeId                string `form:"sub_ueId"`
	PlmnID              string `form:"sub_plmnID"`
	Key                 string `form:"sub_key"`
	OPc                 string `form:"sub_opc"`
	SequenceNumber      string `form:"sub_sequenceNumber"`
	K4Sno               string `form:"sub_k4_sno"`
	EncryptionAlgorithm string `form:"sub_encryptionAlgorithm"`
}

type SubscriberListManager struct {
	resourceManager
	k4 *K4Manager

	mu    sync.Mutex
	state ListState
	meta  ListMeta
}

func NewSubscriberListManager(client *apiclient.Client, apiBase string, pageSize int, k4 *K4Manager) *SubscriberListManager {
	return &SubscriberListManager{
		resourceManager: resourceManager{
			resource:    client.Resource(apiBase, subscriberEndpoint),
			typ:         SubscriberType,
			displayName: "Subscriber",
		},
		k4:    k4,
		state: ListState{Page: 1, Limit: pageSize},
		meta:  ListMeta{Page: 1, Limit: pageSize},
	}
}

func (m *SubscriberListManager) ItemName(doc any) string {
	switch sub := doc.(type) {
	case configmodels.SubsListIE:
		return sub.UeId
	case *configmodels.SubsListIE:
		return sub.UeId
	case *configmodels.SubsData:
		return sub.UeId
	}
	return ""
}

func (m *SubscriberListManager) State() ListState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *SubscriberListManager) Meta() ListMeta {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.meta
}

func (s ListState) query() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(s.Page))
	q.Set("limit", strconv.Itoa(s.Limit))
	if s.PlmnID != "" {
		q.Set("plmnID", s.PlmnID)
	}
	if s.Q != "" {
		q.Set("q", s.Q)
	}
	if s.UeId != "" {
		q.Set("ueId", s.UeId)
	}
	return q
}

// Load fetches the page described by the current list state.
func (m *SubscriberListManager) Load(ctx context.Context) ([]any, error) {
	state := m.State()
	body, err := m.resource.ListRaw(ctx, state.query())
	if err != nil {
		return nil, err
	}
	items, meta, err := ParseSubscriberPage(body, state)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.meta = meta
	m.mu.Unlock()
	list := make([]any, len(items))
	for i := range items {
		list[i] = &items[i]
	}
	return list, nil
}

// ParseSubscriberPage accepts the legacy array answer as well as the
// paginated {items, page, limit, total, pages} object.
func ParseSubscriberPage(body []byte, state ListState) ([]configmodels.SubsListIE, ListMeta, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		items := []configmodels.SubsListIE{}
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, ListMeta{}, fmt.Errorf("invalid subscriber list: %w", err)
		}
		return items, ListMeta{Page: 1, Limit: len(items), Total: len(items), Pages: 1}, nil
	}
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []configmodels.SubsListIE{}, ListMeta{Page: 1, Pages: 1}, nil
	}
	var page configmodels.SubsListPage
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, ListMeta{}, fmt.Errorf("invalid subscriber list: %w", err)
	}
	meta := ListMeta{Page: page.Page, Limit: page.Limit, Total: page.Total, Pages: page.Pages}
	if meta.Page == 0 {
		meta.Page = state.Page
	}
	if meta.Limit == 0 {
		meta.Limit = state.Limit
	}
	items := page.Items
	if items == nil {
		items = []configmodels.SubsListIE{}
	}
	return items, meta, nil
}

// GoToPage moves to page, never below the first one, and reloads.
func (m *SubscriberListManager) GoToPage(ctx context.Context, page int) ([]any, error) {
	if page < 1 {
		page = 1
	}
	m.mu.Lock()
	m.state.Page = page
	m.mu.Unlock()
	return m.Load(ctx)
}

// ApplyFilters restarts from the first page. A limit that is not positive
// keeps the current one.
func (m *SubscriberListManager) ApplyFilters(ctx context.Context, f Filters) ([]any, error) {
	m.mu.Lock()
	m.state.Q = strings.TrimSpace(f.Q)
	m.state.UeId = strings.TrimSpace(f.UeId)
	m.state.PlmnID = strings.TrimSpace(f.PlmnID)
	if f.Limit > 0 {
		m.state.Limit = f.Limit
	}
	m.state.Page = 1
	m.mu.Unlock()
	return m.Load(ctx)
}

func (m *SubscriberListManager) ClearFilters(ctx context.Context) ([]any, error) {
	m.mu.Lock()
	m.state = ListState{Page: 1, Limit: m.state.Limit}
	m.mu.Unlock()
	return m.Load(ctx)
}

func (m *SubscriberListManager) Get(ctx context.Context, name string) (any, error) {
	body, err := m.resource.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return m.FromResponse(body)
}

// Create posts the subscriber to /subscriber/{ueId}.
func (m *SubscriberListManager) Create(ctx context.Context, payload any) error {
	sub, ok := payload.(*configmodels.SubsOverrideData)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", payload)
	}
	if sub.UeId == "" {
		return fmt.Errorf("UE ID is required for subscriber creation")
	}
	_, err := m.resource.Create(ctx, sub, sub.UeId)
	return err
}

func (m *SubscriberListManager) FromResponse(data []byte) (any, error) {
	return configmodels.Decode[configmodels.SubsData](data)
}

func (m *SubscriberListManager) Validate(form Form, isEdit bool) []string {
	var f subscriberForm
	if err := decodeForm(form, &f); err != nil {
		return []string{err.Error()}
	}
	errors := []string{}
	if blank(f.UeId) {
		errors = append(errors, "UE ID is required")
	}
	if !isValidPlmnId(f.PlmnID) {
		errors = append(errors, "PLMN ID must be 5 or 6 digits")
	}
	if !isHex(f.Key) {
		errors = append(errors, "Key (Ki) must contain only hexadecimal characters")
	}
	if !isHex(f.OPc) {
		errors = append(errors, "OPc must contain only hexadecimal characters")
	}
	if blank(f.SequenceNumber) {
		errors = append(errors, "Sequence Number is required")
	}
	return errors
}

func (m *SubscriberListManager) ToPayload(form Form, isEdit bool) (any, error) {
	var f subscriberForm
	if err := decodeForm(form, &f); err != nil {
		return nil, err
	}
	algorithm, _ := parseInt(f.EncryptionAlgorithm)
	payload := &configmodels.SubsOverrideData{
		UeId:                f.UeId,
		PlmnID:              f.PlmnID,
		OPc:                 f.OPc,
		Key:                 f.Key,
		SequenceNumber:      f.SequenceNumber,
		EncryptionAlgorithm: int(algorithm),
	}
	if sno, ok := parseInt(f.K4Sno); ok {
		k4Sno := int(sno)
		payload.K4Sno = &k4Sno
	}
	return payload, nil
}

func (m *SubscriberListManager) ToForm(doc any) Form {
	sub, ok := doc.(*configmodels.SubsData)
	if !ok {
		return Form{}
	}
	form := Form{
		"sub_ueId":   sub.UeId,
		"sub_plmnID": sub.PlmnID,
	}
	auth := sub.AuthenticationSubscription
	if auth.PermanentKey != nil {
		form["sub_key"] = auth.PermanentKey.PermanentKeyValue
	}
	if auth.Opc != nil {
		form["sub_opc"] = auth.Opc.OpcValue
		form["sub_encryptionAlgorithm"] = strconv.Itoa(int(auth.Opc.EncryptionAlgorithm))
	}
	form["sub_sequenceNumber"] = auth.SequenceNumber
	return form
}

func (m *SubscriberListManager) Fields(isEdit bool) []Field {
	return []Field{
		{Id: "sub_ueId", Label: "UE ID (IMSI)", Kind: TextField, Required: true, ReadOnly: isEdit, Placeholder: "e.g., imsi-208930100007487"},
		{Id: "sub_plmnID", Label: "PLMN ID", Kind: TextField, Required: true, Placeholder: "e.g., 20893"},
		{Id: "sub_key", Label: "Key (Ki)", Kind: TextField, Required: true, Placeholder: "e.g., 5122250214c33e723a5dd523fc145fc0"},
		{Id: "sub_opc", Label: "OPc", Kind: TextField, Required: true, Placeholder: "e.g., 981d464c7c52eb6e5036234984ad0bcf"},
		{Id: "sub_sequenceNumber", Label: "Sequence Number", Kind: TextField, Required: true, Placeholder: "e.g., 16f3b3f70fc2"},
		{Id: "sub_k4_sno", Label: "K4 Key (Optional)", Kind: SelectField, Options: []Option{{Value: "", Label: "None (Optional)"}}},
		{Id: "sub_encryptionAlgorithm", Label: "Encryption Algorithm", Kind: NumberField, Placeholder: "0", Min: intPtr(0)},
	}
}

// PrepareFields fills the K4 key select.
func (m *SubscriberListManager) PrepareFields(ctx context.Context, fields []Field) []Field {
	options := []Option{{Value: "", Label: "None (Optional)"}}
	if m.k4 != nil {
		k4Options, err := m.k4.Options(ctx)
		if err != nil {
			logger.ConsoleLog.Warnf("failed to load K4 keys: %v", err)
			options = []Option{{Value: "", Label: "Error loading K4 keys"}}
		} else {
			options = append(options, k4Options...)
		}
	}
	for i := range fields {
		if fields[i].Id == "sub_k4_sno" {
			fields[i].Options = options
		}
	}
	return fields
}

func (m *SubscriberListManager) Render(items []any) Table {
	table := Table{Headers: []string{"UE ID (IMSI)", "PLMN ID"}, Rows: [][]string{}, Empty: "No subscribers found"}
	for _, item := range items {
		var sub configmodels.SubsListIE
		switch v := item.(type) {
		case *configmodels.SubsListIE:
			sub = *v
		case configmodels.SubsListIE:
			sub = v
		default:
			continue
		}
		table.Rows = append(table.Rows, []string{orNA(sub.UeId), orNA(sub.PlmnID)})
	}
	return table
}
