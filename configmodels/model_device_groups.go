// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

/*
 * Connectivity Service Configuration
 *
 * APIs to configure connectivity service in Aether Network
 *
 * API version: 1.0.0
 */

package configmodels

type DeviceGroups struct {
	DeviceGroupName string `json:"group-name" validate:"required"`

	Imsis []string `json:"imsis"`

	SiteInfo string `json:"site-info,omitempty"`

	IpDomainName string `json:"ip-domain-name,omitempty"`

	IpDomainExpanded DeviceGroupsIpDomainExpanded `json:"ip-domain-expanded"`
}

// DeviceGroupsIpDomainExpanded - This is APN for device
type DeviceGroupsIpDomainExpanded struct {
	Dnn string `json:"dnn,omitempty"`

	UeIpPool string `json:"ue-ip-pool,omitempty"`

	DnsPrimary string `json:"dns-primary,omitempty"`

	DnsSecondary string `json:"dns-secondary,omitempty"`

	Mtu int32 `json:"mtu,omitempty" validate:"omitempty,min=0"`

	UeDnnQos *DeviceGroupsIpDomainExpandedUeDnnQos `json:"ue-dnn-qos,omitempty"`
}

type DeviceGroupsIpDomainExpandedUeDnnQos struct {
	// uplink data rate in bitrate unit
	DnnMbrUplink int64 `json:"dnn-mbr-uplink,omitempty"`

	// downlink data rate in bitrate unit
	DnnMbrDownlink int64 `json:"dnn-mbr-downlink,omitempty"`

	// data rate unit for uplink and downlink
	BitrateUnit string `json:"bitrate-unit,omitempty"`

	TrafficClass *TrafficClassInfo `json:"traffic-class,omitempty"`
}

// TrafficClassInfo - QCI/QFI for the traffic
type TrafficClassInfo struct {
	Name string `json:"name,omitempty"`

	// QCI/5QI/QFI
	Qci int32 `json:"qci,omitempty"`

	// Traffic class priority
	Arp int32 `json:"arp,omitempty"`

	// Packet Delay Budget
	Pdb int32 `json:"pdb,omitempty"`

	// Packet Error Loss Rate
	Pelr int32 `json:"pelr,omitempty"`
}
