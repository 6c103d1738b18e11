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

const deviceGroupEndpoint = "/device-group"

type deviceGroupForm struct {
	GroupName        string `form:"group_name"`
	Imsis            string `form:"imsis"`
	SiteInfo         string `form:"site_info"`
	IpDomainName     string `form:"ip_domain_name"`
	Dnn              string `form:"dnn"`
	UeIpPool         string `form:"ue_ip_pool"`
	DnsPrimary       string `form:"dns_primary"`
	DnsSecondary     string `form:"dns_secondary"`
	Mtu              string `form:"mtu"`
	DnnMbrUplink     string `form:"dnn_mbr_uplink"`
	DnnMbrDownlink   string `form:"dnn_mbr_downlink"`
	BitrateUnit      string `form:"bitrate_unit"`
	TrafficClassName string `form:"traffic_class_name"`
	TrafficClassQci  string `form:"traffic_class_qci"`
	TrafficClassArp  string `form:"traffic_class_arp"`
	TrafficClassPdb  string `form:"traffic_class_pdb"`
	TrafficClassPelr string `form:"traffic_class_pelr"`
}

type DeviceGroupManager struct {
	resourceManager
	concurrency int
}

func NewDeviceGroupManager(client *apiclient.Client, apiBase string, concurrency int) *DeviceGroupManager {
	return &DeviceGroupManager{
		resourceManager: resourceManager{
			resource:    client.Resource(apiBase, deviceGroupEndpoint),
			typ:         DeviceGroupType,
			displayName: "Device Group",
		},
		concurrency: concurrency,
	}
}

func (m *DeviceGroupManager) ItemName(doc any) string {
	if dg, ok := doc.(*configmodels.DeviceGroups); ok {
		return dg.DeviceGroupName
	}
	return ""
}

// Load fetches the group names and then the full document of each group.
func (m *DeviceGroupManager) Load(ctx context.Context) ([]any, error) {
	docs, err := fetchDetails(ctx, m.resource, m.concurrency, configmodels.Decode[configmodels.DeviceGroups])
	if err != nil {
		return nil, err
	}
	return toAny(docs), nil
}

// Names returns the device group names known by the backend.
func (m *DeviceGroupManager) Names(ctx context.Context) ([]string, error) {
	raw, err := listNames(ctx, m.resource)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(raw))
	for _, n := range raw {
		if name, ok := n.(string); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

func (m *DeviceGroupManager) Get(ctx context.Context, name string) (any, error) {
	body, err := m.resource.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return m.FromResponse(body)
}

// Create posts the group to /device-group/{group-name}.
func (m *DeviceGroupManager) Create(ctx context.Context, payload any) error {
	dg, ok := payload.(*configmodels.DeviceGroups)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", payload)
	}
	_, err := m.resource.Create(ctx, dg, dg.DeviceGroupName)
	return err
}

func (m *DeviceGroupManager) FromResponse(data []byte) (any, error) {
	return configmodels.Decode[configmodels.DeviceGroups](data)
}

func splitImsis(imsis string) []string {
	list := []string{}
	for _, imsi := range strings.Split(imsis, "\n") {
		if imsi = strings.TrimSpace(imsi); imsi != "" {
			list = append(list, imsi)
		}
	}
	return list
}

func (m *DeviceGroupManager) Validate(form Form, isEdit bool) []string {
	var f deviceGroupForm
	if err := decodeForm(form, &f); err != nil {
		return []string{err.Error()}
	}
	errors := []string{}
	if blank(f.GroupName) {
		errors = append(errors, "Group name is required")
	}
	for _, imsi := range splitImsis(f.Imsis) {
		if !isValidImsi(imsi) {
			errors = append(errors, fmt.Sprintf("Invalid IMSI format: %s. IMSIs must be exactly 15 digits", imsi))
			break
		}
	}
	if !blank(f.UeIpPool) && !isValidCIDR(f.UeIpPool) {
		errors = append(errors, "UE IP Pool must be in CIDR format (e.g., 172.250.0.0/16)")
	}
	if !blank(f.DnsPrimary) && !isValidIPv4(f.DnsPrimary) {
		errors = append(errors, "Primary DNS must be a valid IP address")
	}
	if !blank(f.DnsSecondary) && !isValidIPv4(f.DnsSecondary) {
		errors = append(errors, "Secondary DNS must be a valid IP address")
	}
	if !blank(f.Mtu) && !isValidMtu(f.Mtu) {
		errors = append(errors, fmt.Sprintf("MTU must be a number between %d and %d", MIN_MTU, MAX_MTU))
	}
	return errors
}

// ToPayload builds the nested document. ue-dnn-qos and its traffic-class
// are only present when at least one of their fields is set.
func (m *DeviceGroupManager) ToPayload(form Form, isEdit bool) (any, error) {
	var f deviceGroupForm
	if err := decodeForm(form, &f); err != nil {
		return nil, err
	}
	expanded := configmodels.DeviceGroupsIpDomainExpanded{
		Dnn:          f.Dnn,
		UeIpPool:     f.UeIpPool,
		DnsPrimary:   f.DnsPrimary,
		DnsSecondary: f.DnsSecondary,
		Mtu:          int32(intOr(f.Mtu, 0)),
	}

	qos := configmodels.DeviceGroupsIpDomainExpandedUeDnnQos{
		DnnMbrUplink:   intOr(f.DnnMbrUplink, 0),
		DnnMbrDownlink: intOr(f.DnnMbrDownlink, 0),
		BitrateUnit:    f.BitrateUnit,
	}
	tc := configmodels.TrafficClassInfo{
		Name: f.TrafficClassName,
		Qci:  int32(intOr(f.TrafficClassQci, 0)),
		Arp:  int32(intOr(f.TrafficClassArp, 0)),
		Pdb:  int32(intOr(f.TrafficClassPdb, 0)),
		Pelr: int32(intOr(f.TrafficClassPelr, 0)),
	}
	if tc != (configmodels.TrafficClassInfo{}) {
		qos.TrafficClass = &tc
	}
	if qos != (configmodels.DeviceGroupsIpDomainExpandedUeDnnQos{}) {
		expanded.UeDnnQos = &qos
	}

	return &configmodels.DeviceGroups{
		DeviceGroupName:  f.GroupName,
		Imsis:            splitImsis(f.Imsis),
		SiteInfo:         f.SiteInfo,
		IpDomainName:     f.IpDomainName,
		IpDomainExpanded: expanded,
	}, nil
}

func formInt(n int64) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatInt(n, 10)
}

func (m *DeviceGroupManager) ToForm(doc any) Form {
	dg, ok := doc.(*configmodels.DeviceGroups)
	if !ok {
		return Form{}
	}
	exp := dg.IpDomainExpanded
	form := Form{
		"group_name":     dg.DeviceGroupName,
		"imsis":          strings.Join(dg.Imsis, "\n"),
		"site_info":      dg.SiteInfo,
		"ip_domain_name": dg.IpDomainName,
		"dnn":            exp.Dnn,
		"ue_ip_pool":     exp.UeIpPool,
		"dns_primary":    exp.DnsPrimary,
		"dns_secondary":  exp.DnsSecondary,
		"mtu":            formInt(int64(exp.Mtu)),
		"bitrate_unit":   "Mbps",
	}
	if qos := exp.UeDnnQos; qos != nil {
		form["dnn_mbr_uplink"] = formInt(qos.DnnMbrUplink)
		form["dnn_mbr_downlink"] = formInt(qos.DnnMbrDownlink)
		if qos.BitrateUnit != "" {
			form["bitrate_unit"] = qos.BitrateUnit
		}
		if tc := qos.TrafficClass; tc != nil {
			form["traffic_class_name"] = tc.Name
			form["traffic_class_qci"] = formInt(int64(tc.Qci))
			form["traffic_class_arp"] = formInt(int64(tc.Arp))
			form["traffic_class_pdb"] = formInt(int64(tc.Pdb))
			form["traffic_class_pelr"] = formInt(int64(tc.Pelr))
		}
	}
	return form
}

func (m *DeviceGroupManager) Fields(isEdit bool) []Field {
	return []Field{
		{Id: "group_name", Label: "Group Name", Kind: TextField, Required: true, ReadOnly: isEdit},
		{
			Id: "imsis", Label: "IMSIs", Kind: TextAreaField, Section: "IMSI Configuration",
			Placeholder: "001010000000001\n001010000000002", Help: "Enter one IMSI per line (15 digits each)",
		},
		{Id: "site_info", Label: "Site Info", Kind: TextField, Section: "Site Information", Placeholder: "e.g., site-1"},
		{Id: "ip_domain_name", Label: "IP Domain Name", Kind: TextField, Section: "IP Domain Configuration", Placeholder: "e.g., pool1"},
		{Id: "dnn", Label: "DNN (Data Network Name)", Kind: TextField, Section: "IP Domain Expanded (APN Configuration)", Placeholder: "e.g., internet"},
		{Id: "ue_ip_pool", Label: "UE IP Pool", Kind: TextField, Section: "IP Domain Expanded (APN Configuration)", Placeholder: "e.g., 172.250.0.0/16"},
		{Id: "mtu", Label: "MTU", Kind: NumberField, Section: "IP Domain Expanded (APN Configuration)", Placeholder: "e.g., 1460", Min: intPtr(MIN_MTU), Max: intPtr(MAX_MTU)},
		{Id: "dns_primary", Label: "Primary DNS", Kind: TextField, Section: "IP Domain Expanded (APN Configuration)", Placeholder: "e.g., 8.8.8.8"},
		{Id: "dns_secondary", Label: "Secondary DNS", Kind: TextField, Section: "IP Domain Expanded (APN Configuration)", Placeholder: "e.g., 8.8.4.4"},
		{Id: "dnn_mbr_uplink", Label: "Uplink MBR", Kind: NumberField, Section: "QoS Configuration", Placeholder: "e.g., 100", Min: intPtr(0)},
		{Id: "dnn_mbr_downlink", Label: "Downlink MBR", Kind: NumberField, Section: "QoS Configuration", Placeholder: "e.g., 200", Min: intPtr(0)},
		{
			Id: "bitrate_unit", Label: "Bitrate Unit", Kind: SelectField, Section: "QoS Configuration",
			Options: []Option{{Value: "Mbps", Label: "Mbps"}, {Value: "Kbps", Label: "Kbps"}, {Value: "Gbps", Label: "Gbps"}},
		},
		{Id: "traffic_class_name", Label: "Traffic Class Name", Kind: TextField, Section: "Traffic Class Info", Placeholder: "e.g., default"},
		{Id: "traffic_class_qci", Label: "QCI/5QI/QFI", Kind: NumberField, Section: "Traffic Class Info", Placeholder: "e.g., 9", Min: intPtr(0)},
		{Id: "traffic_class_arp", Label: "ARP (Priority)", Kind: NumberField, Section: "Traffic Class Info", Placeholder: "e.g., 1", Min: intPtr(0)},
		{Id: "traffic_class_pdb", Label: "PDB (ms)", Kind: NumberField, Section: "Traffic Class Info", Placeholder: "e.g., 300", Min: intPtr(0)},
		{Id: "traffic_class_pelr", Label: "PELR (%)", Kind: NumberField, Section: "Traffic Class Info", Placeholder: "e.g., 1", Min: intPtr(0), Max: intPtr(100)},
	}
}

func (m *DeviceGroupManager) Render(items []any) Table {
	table := Table{
		Headers: []string{"Group Name", "IMSIs", "Site Info", "IP Domain"},
		Rows:    [][]string{},
		Empty:   "No device groups found",
	}
	for _, item := range items {
		dg, ok := item.(*configmodels.DeviceGroups)
		if !ok {
			continue
		}
		imsis := fmt.Sprintf("%d IMSIs", len(dg.Imsis))
		if len(dg.Imsis) > 0 {
			preview := dg.Imsis
			suffix := ""
			if len(preview) > 3 {
				preview, suffix = preview[:3], "..."
			}
			imsis += " (" + strings.Join(preview, ", ") + suffix + ")"
		}
		table.Rows = append(table.Rows, []string{
			orNA(dg.DeviceGroupName), imsis, orNA(dg.SiteInfo), orNA(dg.IpDomainName),
		})
	}
	return table
}
