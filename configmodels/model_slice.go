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

type Slice struct {
	SliceName string `json:"slice-name" validate:"required"`

	SliceId SliceSliceId `json:"slice-id"`

	SiteDeviceGroup []string `json:"site-device-group"`

	SiteInfo SliceSiteInfo `json:"site-info"`

	ApplicationFilteringRules []SliceApplicationFilteringRules `json:"application-filtering-rules" validate:"dive"`
}

type SliceSliceId struct {
	// Slice Service Type
	Sst string `json:"sst"`

	// Slice differentiator
	Sd string `json:"sd"`
}

// SliceSiteInfo - give details of the site where this device group is activated
type SliceSiteInfo struct {
	// Unique name per Site.
	SiteName string `json:"site-name"`

	Plmn SliceSiteInfoPlmn `json:"plmn"`

	GNodeBs []SliceSiteInfoGNodeBs `json:"gNodeBs" validate:"dive"`

	// UPF which belong to this slice, keyed by UPF name
	Upf map[string]interface{} `json:"upf"`
}

type SliceSiteInfoPlmn struct {
	Mcc string `json:"mcc"`

	Mnc string `json:"mnc"`
}

type SliceSiteInfoGNodeBs struct {
	Name string `json:"name"`

	// unique tac per gNB. This should match gNB configuration.
	Tac int32 `json:"tac" validate:"min=0,max=16777215"`
}

type SliceApplicationFilteringRules struct {
	// Rule name
	RuleName string `json:"rule-name"`

	// priority
	Priority int32 `json:"priority"`

	// action
	Action string `json:"action"`

	// Application Desination IP or network
	Endpoint string `json:"endpoint"`

	// protocol
	Protocol int32 `json:"protocol"`

	// port range start
	StartPort int32 `json:"dest-port-start" validate:"min=0,max=65535"`

	// port range end
	EndPort int32 `json:"dest-port-end" validate:"min=0,max=65535"`

	AppMbrUplink int32 `json:"app-mbr-uplink"`

	AppMbrDownlink int32 `json:"app-mbr-downlink"`

	BitrateUnit string `json:"bitrate-unit"`

	TrafficClass *TrafficClassInfo `json:"traffic-class,omitempty"`

	RuleTrigger string `json:"rule-trigger"`
}

// UPF configuration carried inside a slice's site-info.upf map.
const UpfPortKey = "upf-port"
