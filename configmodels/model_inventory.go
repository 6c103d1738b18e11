// SPDX-FileCopyrightText: 2024 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package configmodels

type Gnb struct {
	Name string `json:"name" validate:"required"`
	Tac  int32  `json:"tac,omitempty" validate:"omitempty,min=1,max=16777215"`
}

type Upf struct {
	Hostname string `json:"hostname" validate:"required"`
	Port     string `json:"port"`
}
