// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package configmodels

import (
	"github.com/omec-project/openapi/models"
)

type SubsData struct {
	PlmnID                            string                                     `json:"plmnID"`
	UeId                              string                                     `json:"ueId" validate:"required"`
	AuthenticationSubscription        models.AuthenticationSubscription          `json:"AuthenticationSubscription"`
	AccessAndMobilitySubscriptionData models.AccessAndMobilitySubscriptionData   `json:"AccessAndMobilitySubscriptionData"`
	SessionManagementSubscriptionData []models.SessionManagementSubscriptionData `json:"SessionManagementSubscriptionData"`
	SmfSelectionSubscriptionData      models.SmfSelectionSubscriptionData        `json:"SmfSelectionSubscriptionData"`
	AmPolicyData                      models.AmPolicyData                        `json:"AmPolicyData"`
	SmPolicyData                      models.SmPolicyData                        `json:"SmPolicyData"`
}

// SubsOverrideData is the body of subscriber create and update requests.
type SubsOverrideData struct {
	UeId                string `json:"ueId"`
	PlmnID              string `json:"plmnID"`
	OPc                 string `json:"OPc"`
	Key                 string `json:"Key"`
	SequenceNumber      string `json:"SequenceNumber"`
	EncryptionAlgorithm int    `json:"EncryptionAlgorithm"`
	K4Sno               *int   `json:"k4_sno,omitempty"`
}
