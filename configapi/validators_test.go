// SPDX-License-Identifier: Apache-2.0
// Copyright 2025 Canonical Ltd.

package configapi

import (
	"testing"
)

func TestValidateImsi(t *testing.T) {
	testCases := []struct {
		imsi     string
		expected bool
	}{
		{"001010000000001", true},
		{"208930100007487", true},
		{"00101000000001", false},
		{"0010100000000011", false},
		{"00101000000000a", false},
		{" 001010000000001", false},
		{"", false},
	}

	for _, tc := range testCases {
		r := isValidImsi(tc.imsi)
		if r != tc.expected {
			t.Errorf("%s", tc.imsi)
		}
	}
}

func TestValidateCIDR(t *testing.T) {
	testCases := []struct {
		pool     string
		expected bool
	}{
		{"172.250.0.0/16", true},
		{"10.0.0.0/8", true},
		{"192.168.1.0/24", true},
		{"172.250.0.0", false},
		{"172.250.0/16", false},
		{"172.250.0.0/160", false},
		{"pool1", false},
		{"", false},
	}

	for _, tc := range testCases {
		r := isValidCIDR(tc.pool)
		if r != tc.expected {
			t.Errorf("%s", tc.pool)
		}
	}
}

func TestValidateIPv4(t *testing.T) {
	testCases := []struct {
		ip       string
		expected bool
	}{
		{"8.8.8.8", true},
		{"8.8.4.4", true},
		{"8.8.8", false},
		{"8.8.8.8/32", false},
		{"dns.google", false},
		{"", false},
	}

	for _, tc := range testCases {
		r := isValidIPv4(tc.ip)
		if r != tc.expected {
			t.Errorf("%s", tc.ip)
		}
	}
}

func TestValidateMtu(t *testing.T) {
	testCases := []struct {
		mtu      string
		expected bool
	}{
		{"1200", true},
		{"1460", true},
		{"9000", true},
		{"1199", false},
		{"9001", false},
		{"0", false},
		{"mtu", false},
		{"", false},
	}

	for _, tc := range testCases {
		r := isValidMtu(tc.mtu)
		if r != tc.expected {
			t.Errorf("%s", tc.mtu)
		}
	}
}

func TestValidateUpfPort(t *testing.T) {
	testCases := []struct {
		port     string
		expected bool
	}{
		{"123", true},
		{"7000", true},
		{"0", true},
		{"65535", true},
		{"-1", false},
		{"65536", false},
		{"invalid", false},
		{"123ad", false},
		{"", false},
	}

	for _, tc := range testCases {
		r := isValidUpfPort(tc.port)
		if r != tc.expected {
			t.Errorf("%s", tc.port)
		}
	}
}

func TestValidateGnbTac(t *testing.T) {
	testCases := []struct {
		tac      string
		expected bool
	}{
		{"1", true},
		{"7000", true},
		{"16777215", true},
		{"0", false},
		{"-1", false},
		{"16777216", false},
		{"invalid", false},
		{"", false},
	}

	for _, tc := range testCases {
		r := isValidGnbTac(tc.tac)
		if r != tc.expected {
			t.Errorf("%s", tc.tac)
		}
	}
}

func TestValidateSliceIdentifiers(t *testing.T) {
	testCases := []struct {
		name     string
		check    func(string) bool
		value    string
		expected bool
	}{
		{"sd hex", isValidSd, "010203", true},
		{"sd mixed case", isValidSd, "aBcDeF", true},
		{"sd short", isValidSd, "01020", false},
		{"sd not hex", isValidSd, "01020g", false},
		{"mcc", isValidMcc, "208", true},
		{"mcc short", isValidMcc, "20", false},
		{"mnc two digits", isValidMnc, "93", true},
		{"mnc three digits", isValidMnc, "930", true},
		{"mnc four digits", isValidMnc, "9300", false},
		{"plmn five digits", isValidPlmnId, "20893", true},
		{"plmn six digits", isValidPlmnId, "208930", true},
		{"plmn four digits", isValidPlmnId, "2089", false},
		{"hex", isHex, "00112233AABBccdd", true},
		{"hex empty", isHex, "", false},
		{"hex invalid", isHex, "0x11", false},
		{"k4 sno low", isValidK4Sno, "0", true},
		{"k4 sno high", isValidK4Sno, "255", true},
		{"k4 sno out of range", isValidK4Sno, "256", false},
		{"k4 sno missing", isValidK4Sno, "", false},
	}

	for _, tc := range testCases {
		if r := tc.check(tc.value); r != tc.expected {
			t.Errorf("%s: %q", tc.name, tc.value)
		}
	}
}

func TestParseInt(t *testing.T) {
	testCases := []struct {
		in       string
		expected int64
		ok       bool
	}{
		{"1460", 1460, true},
		{" 42 ", 42, true},
		{"-3", -3, true},
		{"12abc", 12, true},
		{"1.5", 1, true},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tc := range testCases {
		n, ok := parseInt(tc.in)
		if n != tc.expected || ok != tc.ok {
			t.Errorf("parseInt(%q) = %d, %v", tc.in, n, ok)
		}
	}
}
