// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0

package configmodels

import "time"

const (
	K4LabelAES  = "K4_AES"
	K4LabelDES  = "K4_DES"
	K4LabelDES3 = "K4_DES3"

	K4TypeAES  = "AES"
	K4TypeDES  = "DES"
	K4TypeDES3 = "DES3"
)

var (
	K4Labels = []string{K4LabelAES, K4LabelDES, K4LabelDES3}
	K4Types  = []string{K4TypeAES, K4TypeDES, K4TypeDES3}
)

type K4 struct {
	K4       string `json:"k4" validate:"omitempty,hexadecimal"`
	K4_SNO   byte   `json:"k4_sno"`
	K4_Label string `json:"key_label,omitempty"`
	K4_Type  string `json:"key_type,omitempty"`
	// Creation timestamp in RFC3339
	TimeCreated *time.Time `json:"time_created,omitempty"`
	// Update timestamp in RFC3339
	TimeUpdated *time.Time `json:"time_updated,omitempty"`
}
