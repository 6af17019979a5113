package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentStatus(t *testing.T) {
	entry := LineStatusEntry{
		Name: "Central",
		LineStatuses: []StatusRecord{
			{StatusSeverityDescription: "Minor Delays", Reason: "Central Line: Minor delays."},
			{StatusSeverityDescription: GoodService},
		},
	}

	status, ok := entry.CurrentStatus()
	assert.True(t, ok)
	assert.Equal(t, "Minor Delays", status.StatusSeverityDescription)
	assert.False(t, status.IsGoodService())

	_, ok = LineStatusEntry{Name: "Central"}.CurrentStatus()
	assert.False(t, ok)
}

func TestIsGoodService(t *testing.T) {
	assert.True(t, StatusRecord{StatusSeverityDescription: "Good Service"}.IsGoodService())
	assert.False(t, StatusRecord{StatusSeverityDescription: "good service"}.IsGoodService())
	assert.False(t, StatusRecord{}.IsGoodService())
}
