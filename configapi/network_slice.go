// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package configapi

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/omec-project/webconsole-ui/backend/apiclient"
	"github.com/omec-project/webconsole-ui/backend/logger"
	"github.com/omec-project/webconsole-ui/configmodels"
)

const (
	networkSliceEndpoint = "/network-slice"
	defaultBitrateUnit   = "bps"
	defaultTrafficClass  = "default"
	defaultQci           = 9
	defaultArp           = 8
	defaultPdb           = 100
	defaultPelr          = 6
)

type gnbRow struct {
	Name string `form:"name"`
	Tac  string `form:"tac"`
}

type upfRow struct {
	Name string `form:"name"`
	Port string `form:"port"`
}

type appRuleRow struct {
	RuleName       string `form:"rule_name"`
	Priority       string `form:"priority"`
	Action         string `form:"action"`
	Endpoint       string `form:"endpoint"`
	Protocol       string `form:"protocol"`
	DestPortStart  string `form:"dest_port_start"`
	DestPortEnd    string `form:"dest_port_end"`
	RuleTrigger    string `form:"rule_trigger"`
	AppMbrUplink   string `form:"app_mbr_uplink"`
	AppMbrDownlink string `form:"app_mbr_downlink"`
	BitrateUnit    string `form:"bitrate_unit"`
	TcName         string `form:"tc_name"`
	TcQci          string `form:"tc_qci"`
	TcArp          string `form:"tc_arp"`
	TcPdb          string `form:"tc_pdb"`
	TcPelr         string `form:"tc_pelr"`
}

type networkSliceForm struct {
	SliceName        string       `form:"slice_name"`
	Sst              string       `form:"sst"`
	Sd               string       `form:"sd"`
	SiteName         string       `form:"site_name"`
	Mcc              string       `form:"mcc"`
	Mnc              string       `form:"mnc"`
	SiteDeviceGroup  []string     `form:"site_device_group"`
	GNodeBs          []gnbRow     `form:"gnodebs"`
	Upfs             []upfRow     `form:"upfs"`
	ApplicationRules []appRuleRow `form:"application_rules"`
}

// gNodeBs drops rows left completely empty.
func (f *networkSliceForm) gNodeBs() []gnbRow {
	rows := []gnbRow{}
	for _, row := range f.GNodeBs {
		row.Name = strings.TrimSpace(row.Name)
		if row.Name == "" && blank(row.Tac) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

type NetworkSliceManager struct {
	resourceManager
	concurrency  int
	deviceGroups *DeviceGroupManager
}

func NewNetworkSliceManager(client *apiclient.Client, apiBase string, concurrency int, deviceGroups *DeviceGroupManager) *NetworkSliceManager {
	return &NetworkSliceManager{
		resourceManager: resourceManager{
			resource:    client.Resource(apiBase, networkSliceEndpoint),
			typ:         NetworkSliceType,
			displayName: "Network Slice",
		},
		concurrency:  concurrency,
		deviceGroups: deviceGroups,
	}
}

func (m *NetworkSliceManager) ItemName(doc any) string {
	if slice, ok := doc.(*configmodels.Slice); ok {
		return slice.SliceName
	}
	return ""
}

func (m *NetworkSliceManager) Load(ctx context.Context) ([]any, error) {
	docs, err := fetchDetails(ctx, m.resource, m.concurrency, configmodels.Decode[configmodels.Slice])
	if err != nil {
		return nil, err
	}
	return toAny(docs), nil
}

func (m *NetworkSliceManager) Get(ctx context.Context, name string) (any, error) {
	body, err := m.resource.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return m.FromResponse(body)
}

// Create posts the slice to /network-slice/{slice-name}.
func (m *NetworkSliceManager) Create(ctx context.Context, payload any) error {
	slice, ok := payload.(*configmodels.Slice)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", payload)
	}
	_, err := m.resource.Create(ctx, slice, slice.SliceName)
	return err
}

func (m *NetworkSliceManager) FromResponse(data []byte) (any, error) {
	return configmodels.Decode[configmodels.Slice](data)
}

func (m *NetworkSliceManager) Validate(form Form, isEdit bool) []string {
	var f networkSliceForm
	if err := decodeForm(form, &f); err != nil {
		return []string{err.Error()}
	}
	errors := []string{}
	if blank(f.SliceName) {
		errors = append(errors, "Slice name is required")
	}
	if blank(f.Sst) {
		errors = append(errors, "SST (Slice Service Type) is required")
	}
	if f.Sd != "" && !isValidSd(f.Sd) {
		errors = append(errors, "SD must be exactly 6 hexadecimal digits (e.g., 000001)")
	}
	if blank(f.SiteName) {
		errors = append(errors, "Site name is required")
	}
	if !isValidMcc(f.Mcc) {
		errors = append(errors, "MCC must be exactly 3 digits")
	}
	if !isValidMnc(f.Mnc) {
		errors = append(errors, "MNC must be 2 or 3 digits")
	}
	gNodeBs := f.gNodeBs()
	if len(gNodeBs) == 0 {
		errors = append(errors, "At least one gNodeB is required")
	}
	for i, gnb := range gNodeBs {
		if gnb.Name == "" {
			errors = append(errors, fmt.Sprintf("gNodeB %d: Name is required", i+1))
		}
		if !isValidGnbTac(gnb.Tac) {
			errors = append(errors, fmt.Sprintf("gNodeB %d: TAC must be between %d and %d", i+1, MIN_TAC, MAX_TAC))
		}
	}
	return errors
}

func (m *NetworkSliceManager) ToPayload(form Form, isEdit bool) (any, error) {
	var f networkSliceForm
	if err := decodeForm(form, &f); err != nil {
		return nil, err
	}

	deviceGroups := []string{}
	for _, group := range f.SiteDeviceGroup {
		if group = strings.TrimSpace(group); group != "" {
			deviceGroups = append(deviceGroups, group)
		}
	}

	gNodeBs := []configmodels.SliceSiteInfoGNodeBs{}
	for _, row := range f.gNodeBs() {
		tac, _ := parseInt(row.Tac)
		gNodeBs = append(gNodeBs, configmodels.SliceSiteInfoGNodeBs{Name: row.Name, Tac: int32(tac)})
	}

	upf := map[string]any{}
	for _, row := range f.Upfs {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			continue
		}
		cfg := map[string]any{}
		if port, ok := parseInt(row.Port); ok {
			cfg[configmodels.UpfPortKey] = port
		}
		upf[name] = cfg
	}

	rules := []configmodels.SliceApplicationFilteringRules{}
	for _, row := range f.ApplicationRules {
		rule, ok := row.toRule()
		if ok {
			rules = append(rules, rule)
		}
	}

	return &configmodels.Slice{
		SliceName: f.SliceName,
		SliceId: configmodels.SliceSliceId{
			Sst: f.Sst,
			Sd:  f.Sd,
		},
		SiteDeviceGroup: deviceGroups,
		SiteInfo: configmodels.SliceSiteInfo{
			SiteName: f.SiteName,
			Plmn: configmodels.SliceSiteInfoPlmn{
				Mcc: f.Mcc,
				Mnc: f.Mnc,
			},
			GNodeBs: gNodeBs,
			Upf:     upf,
		},
		ApplicationFilteringRules: rules,
	}, nil
}

// toRule applies the rule defaults. Rules without a name, an action or
// an endpoint are dropped.
func (row appRuleRow) toRule() (configmodels.SliceApplicationFilteringRules, bool) {
	name := strings.TrimSpace(row.RuleName)
	endpoint := strings.TrimSpace(row.Endpoint)
	if name == "" || row.Action == "" || endpoint == "" {
		return configmodels.SliceApplicationFilteringRules{}, false
	}
	bitrateUnit := row.BitrateUnit
	if bitrateUnit == "" {
		bitrateUnit = defaultBitrateUnit
	}
	tcName := strings.TrimSpace(row.TcName)
	if tcName == "" {
		tcName = defaultTrafficClass
	}
	return configmodels.SliceApplicationFilteringRules{
		RuleName:       name,
		Priority:       int32(intOr(row.Priority, 0)),
		Action:         row.Action,
		Endpoint:       endpoint,
		Protocol:       int32(intOr(row.Protocol, 0)),
		StartPort:      int32(intOr(row.DestPortStart, 0)),
		EndPort:        int32(intOr(row.DestPortEnd, DEFAULT_END_PORT)),
		RuleTrigger:    strings.TrimSpace(row.RuleTrigger),
		AppMbrUplink:   int32(intOr(row.AppMbrUplink, 0)),
		AppMbrDownlink: int32(intOr(row.AppMbrDownlink, 0)),
		BitrateUnit:    bitrateUnit,
		TrafficClass: &configmodels.TrafficClassInfo{
			Name: tcName,
			Qci:  int32(intOr(row.TcQci, defaultQci)),
			Arp:  int32(intOr(row.TcArp, defaultArp)),
			Pdb:  int32(intOr(row.TcPdb, defaultPdb)),
			Pelr: int32(intOr(row.TcPelr, defaultPelr)),
		},
	}, true
}

func (m *NetworkSliceManager) ToForm(doc any) Form {
	slice, ok := doc.(*configmodels.Slice)
	if !ok {
		return Form{}
	}
	gNodeBs := []any{}
	for _, gnb := range slice.SiteInfo.GNodeBs {
		gNodeBs = append(gNodeBs, map[string]any{"name": gnb.Name, "tac": formInt(int64(gnb.Tac))})
	}
	upfNames := make([]string, 0, len(slice.SiteInfo.Upf))
	for name := range slice.SiteInfo.Upf {
		upfNames = append(upfNames, name)
	}
	sort.Strings(upfNames)
	upfs := []any{}
	for _, name := range upfNames {
		upfs = append(upfs, map[string]any{"name": name, "port": upfPort(slice.SiteInfo.Upf[name])})
	}
	rules := []any{}
	for _, rule := range slice.ApplicationFilteringRules {
		row := map[string]any{
			"rule_name":        rule.RuleName,
			"priority":         strconv.Itoa(int(rule.Priority)),
			"action":           rule.Action,
			"endpoint":         rule.Endpoint,
			"protocol":         strconv.Itoa(int(rule.Protocol)),
			"dest_port_start":  strconv.Itoa(int(rule.StartPort)),
			"dest_port_end":    strconv.Itoa(int(rule.EndPort)),
			"rule_trigger":     rule.RuleTrigger,
			"app_mbr_uplink":   strconv.Itoa(int(rule.AppMbrUplink)),
			"app_mbr_downlink": strconv.Itoa(int(rule.AppMbrDownlink)),
			"bitrate_unit":     rule.BitrateUnit,
		}
		if tc := rule.TrafficClass; tc != nil {
			row["tc_name"] = tc.Name
			row["tc_qci"] = strconv.Itoa(int(tc.Qci))
			row["tc_arp"] = strconv.Itoa(int(tc.Arp))
			row["tc_pdb"] = strconv.Itoa(int(tc.Pdb))
			row["tc_pelr"] = strconv.Itoa(int(tc.Pelr))
		}
		rules = append(rules, row)
	}
	deviceGroups := append([]string{}, slice.SiteDeviceGroup...)
	return Form{
		"slice_name":        slice.SliceName,
		"sst":               slice.SliceId.Sst,
		"sd":                slice.SliceId.Sd,
		"site_name":         slice.SiteInfo.SiteName,
		"mcc":               slice.SiteInfo.Plmn.Mcc,
		"mnc":               slice.SiteInfo.Plmn.Mnc,
		"site_device_group": deviceGroups,
		"gnodebs":           gNodeBs,
		"upfs":              upfs,
		"application_rules": rules,
	}
}

func upfPort(cfg any) string {
	m, ok := cfg.(map[string]any)
	if !ok {
		return ""
	}
	switch port := m[configmodels.UpfPortKey].(type) {
	case float64:
		return strconv.Itoa(int(port))
	case int64:
		return strconv.FormatInt(port, 10)
	case string:
		return port
	}
	return ""
}

func (m *NetworkSliceManager) Fields(isEdit bool) []Field {
	return []Field{
		{Id: "slice_name", Label: "Slice Name", Kind: TextField, Required: true, ReadOnly: isEdit},
		{Id: "sst", Label: "SST (Slice Service Type)", Kind: TextField, Section: "Slice ID", Required: true, Placeholder: "e.g., 1"},
		{Id: "sd", Label: "SD (Slice Differentiator)", Kind: TextField, Section: "Slice ID", Placeholder: "e.g., 010203"},
		{Id: "site_name", Label: "Site Name", Kind: TextField, Section: "Site Information", Required: true, Placeholder: "e.g., site-1"},
		{Id: "mcc", Label: "MCC", Kind: TextField, Section: "Site Information", Required: true, Placeholder: "e.g., 208"},
		{Id: "mnc", Label: "MNC", Kind: TextField, Section: "Site Information", Required: true, Placeholder: "e.g., 93"},
		{Id: "site_device_group", Label: "Device Groups", Kind: MultiSelectField, Section: "Site Information"},
		{
			Id: "gnodebs", Label: "gNodeBs", Kind: ListField, Section: "gNodeBs", Required: true,
			Item: []Field{
				{Id: "name", Label: "gNodeB Name", Kind: TextField, Required: true, Placeholder: "e.g., gnb-1"},
				{Id: "tac", Label: "gNodeB TAC", Kind: NumberField, Required: true, Min: intPtr(MIN_TAC), Max: intPtr(MAX_TAC)},
			},
		},
		{
			Id: "upfs", Label: "UPFs", Kind: ListField, Section: "UPF",
			Item: []Field{
				{Id: "name", Label: "UPF Name", Kind: TextField, Placeholder: "e.g., upf-1.example.com"},
				{Id: "port", Label: "UPF Port", Kind: NumberField, Placeholder: "8805", Min: intPtr(1), Max: intPtr(65535)},
			},
		},
		{
			Id: "application_rules", Label: "Application Filtering Rules", Kind: ListField, Section: "Application Filtering Rules",
			Item: []Field{
				{Id: "rule_name", Label: "Rule Name", Kind: TextField, Required: true},
				{Id: "priority", Label: "Priority", Kind: NumberField, Min: intPtr(0)},
				{
					Id: "action", Label: "Action", Kind: SelectField, Required: true,
					Options: []Option{{Value: "permit", Label: "Permit"}, {Value: "deny", Label: "Deny"}},
				},
				{Id: "endpoint", Label: "Endpoint", Kind: TextField, Required: true, Placeholder: "e.g., 0.0.0.0/0"},
				{Id: "protocol", Label: "Protocol", Kind: NumberField, Placeholder: "e.g., 17", Min: intPtr(0), Max: intPtr(255)},
				{Id: "dest_port_start", Label: "Start Port", Kind: NumberField, Min: intPtr(0), Max: intPtr(65535)},
				{Id: "dest_port_end", Label: "End Port", Kind: NumberField, Min: intPtr(0), Max: intPtr(65535)},
				{Id: "rule_trigger", Label: "Rule Trigger", Kind: TextField},
				{Id: "app_mbr_uplink", Label: "MBR Uplink", Kind: NumberField, Min: intPtr(0)},
				{Id: "app_mbr_downlink", Label: "MBR Downlink", Kind: NumberField, Min: intPtr(0)},
				{
					Id: "bitrate_unit", Label: "Bitrate Unit", Kind: SelectField,
					Options: []Option{{Value: "bps", Label: "bps"}, {Value: "Kbps", Label: "Kbps"}, {Value: "Mbps", Label: "Mbps"}, {Value: "Gbps", Label: "Gbps"}},
				},
				{Id: "tc_name", Label: "Traffic Class Name", Kind: TextField, Placeholder: "default"},
				{Id: "tc_qci", Label: "QCI", Kind: NumberField, Placeholder: "9"},
				{Id: "tc_arp", Label: "ARP", Kind: NumberField, Placeholder: "8"},
				{Id: "tc_pdb", Label: "PDB", Kind: NumberField, Placeholder: "100"},
				{Id: "tc_pelr", Label: "PELR", Kind: NumberField, Placeholder: "6"},
			},
		},
	}
}

// PrepareFields fills the device group options. A failure leaves the
// select empty.
func (m *NetworkSliceManager) PrepareFields(ctx context.Context, fields []Field) []Field {
	if m.deviceGroups == nil {
		return fields
	}
	names, err := m.deviceGroups.Names(ctx)
	if err != nil {
		logger.ConsoleLog.Warnf("failed to load device groups: %v", err)
		return fields
	}
	options := make([]Option, 0, len(names))
	for _, name := range names {
		options = append(options, Option{Value: name, Label: name})
	}
	for i := range fields {
		if fields[i].Id == "site_device_group" {
			fields[i].Options = options
		}
	}
	return fields
}

func (m *NetworkSliceManager) Render(items []any) Table {
	table := Table{
		Headers: []string{"Slice Name", "SST", "SD", "Site", "Device Groups"},
		Rows:    [][]string{},
		Empty:   "No network slices found",
	}
	for _, item := range items {
		slice, ok := item.(*configmodels.Slice)
		if !ok {
			continue
		}
		groups := fmt.Sprintf("%d groups", len(slice.SiteDeviceGroup))
		if len(slice.SiteDeviceGroup) > 0 {
			groups += " (" + strings.Join(slice.SiteDeviceGroup, ", ") + ")"
		}
		groups += fmt.Sprintf(", %d gNodeBs, %d rules", len(slice.SiteInfo.GNodeBs), len(slice.ApplicationFilteringRules))
		table.Rows = append(table.Rows, []string{
			orNA(slice.SliceName),
			orNA(slice.SliceId.Sst),
			orNA(slice.SliceId.Sd),
			orNA(slice.SiteInfo.SiteName),
			groups,
		})
	}
	return table
}
