package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBuildInfo_Defaults(t *testing.T) {
	buildVersion, buildDate, buildCommit = "", "", ""

	printBuildInfo()

	assert.Equal(t, "N/A", buildVersion)
	assert.Equal(t, "N/A", buildDate)
	assert.Equal(t, "N/A", buildCommit)
}

func TestPrintBuildInfo_KeepsInjectedValues(t *testing.T) {
	buildVersion, buildDate, buildCommit = "v1.2.3", "2026-09-01", "abc1234"

	printBuildInfo()

	assert.Equal(t, "v1.2.3", buildVersion)
	assert.Equal(t, "2026-09-01", buildDate)
	assert.Equal(t, "abc1234", buildCommit)
}
