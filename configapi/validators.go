// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025 Canonical Ltd

package configapi

import (
	"regexp"
	"strconv"
)

const (
	IMSI_PATTERN     = `^\d{15}$`
	CIDR_PATTERN     = `^(\d{1,3}\.){3}\d{1,3}/\d{1,2}$`
	IPV4_PATTERN     = `^(\d{1,3}\.){3}\d{1,3}$`
	SD_PATTERN       = `^[0-9A-Fa-f]{6}$`
	MCC_PATTERN      = `^[0-9]{3}$`
	MNC_PATTERN      = `^[0-9]{2,3}$`
	PLMN_ID_PATTERN  = `^\d{5,6}$`
	HEX_PATTERN      = `^[0-9a-fA-F]+$`
	MIN_MTU          = 1200
	MAX_MTU          = 9000
	MIN_TAC          = 1
	MAX_TAC          = 16777215
	MAX_K4_SNO       = 255
	DEFAULT_END_PORT = 65535
)

var (
	imsiRegex   = regexp.MustCompile(IMSI_PATTERN)
	cidrRegex   = regexp.MustCompile(CIDR_PATTERN)
	ipv4Regex   = regexp.MustCompile(IPV4_PATTERN)
	sdRegex     = regexp.MustCompile(SD_PATTERN)
	mccRegex    = regexp.MustCompile(MCC_PATTERN)
	mncRegex    = regexp.MustCompile(MNC_PATTERN)
	plmnIdRegex = regexp.MustCompile(PLMN_ID_PATTERN)
	hexRegex    = regexp.MustCompile(HEX_PATTERN)
)

func isValidImsi(imsi string) bool {
	return imsiRegex.MatchString(imsi)
}

func isValidCIDR(pool string) bool {
	return cidrRegex.MatchString(pool)
}

func isValidIPv4(ip string) bool {
	return ipv4Regex.MatchString(ip)
}

func isValidSd(sd string) bool {
	return sdRegex.MatchString(sd)
}

func isValidMcc(mcc string) bool {
	return mccRegex.MatchString(mcc)
}

func isValidMnc(mnc string) bool {
	return mncRegex.MatchString(mnc)
}

func isValidPlmnId(plmnId string) bool {
	return plmnIdRegex.MatchString(plmnId)
}

func isHex(s string) bool {
	return hexRegex.MatchString(s)
}

func isValidMtu(mtu string) bool {
	n, ok := parseInt(mtu)
	return ok && n >= MIN_MTU && n <= MAX_MTU
}

func isValidUpfPort(port string) bool {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return false
	}
	return portNum >= 0 && portNum <= 65535
}

func isValidGnbTac(tac string) bool {
	tacNum, ok := parseInt(tac)
	return ok && tacNum >= MIN_TAC && tacNum <= MAX_TAC
}

func isValidK4Sno(sno string) bool {
	n, ok := parseInt(sno)
	return ok && n >= 0 && n <= MAX_K4_SNO
}
