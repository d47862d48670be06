package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusApproved, StatusRejected, StatusCompleted} {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus("cancelled"))
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("Approved"))
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCompleted, false},
		{StatusApproved, StatusCompleted, true},
		{StatusApproved, StatusRejected, true},
		{StatusApproved, StatusPending, false},
		{StatusRejected, StatusPending, false},
		{StatusRejected, StatusCompleted, false},
		{StatusRejected, StatusApproved, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusApproved, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCanTransitionSameStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusApproved, StatusRejected, StatusCompleted} {
		assert.True(t, CanTransition(s, s))
	}
}

func TestNotificationForStatus(t *testing.T) {
	assert.NotEmpty(t, NotificationForStatus(StatusApproved))
	assert.NotEmpty(t, NotificationForStatus(StatusRejected))
	assert.Empty(t, NotificationForStatus(StatusPending))
	assert.Empty(t, NotificationForStatus(StatusCompleted))
}
