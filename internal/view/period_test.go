package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsCurrentMonth(t *testing.T) {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsCurrentMonth(7, now))
	assert.False(t, IsCurrentMonth(6, now))
	assert.False(t, IsCurrentMonth(0, now))
	assert.False(t, IsCurrentMonth(13, now))
}
