// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package configmodels

type SubsListIE struct {
	PlmnID string `json:"plmnID"`
	UeId   string `json:"ueId"`
}

// SubsListPage is the paginated form of the subscriber list. Older
// backends answer with a bare []SubsListIE instead.
type SubsListPage struct {
	Items []SubsListIE `json:"items"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
	Total int          `json:"total"`
	Pages int          `json:"pages"`
}
