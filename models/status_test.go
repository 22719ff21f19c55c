package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	assert.Equal(t, []Status{StatusOrderPlaced, StatusCancelled}, StatusPending.Next())
	assert.Equal(t, []Status{StatusDelivered, StatusCancelled}, StatusOrderPlaced.Next())
	assert.Empty(t, StatusDelivered.Next())
	assert.Empty(t, StatusCancelled.Next())
}

func TestTerminalStatuses(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusOrderPlaced.Terminal())
	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestCanTransitionTo(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusOrderPlaced))
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusPending.CanTransitionTo(StatusDelivered))
	assert.True(t, StatusOrderPlaced.CanTransitionTo(StatusDelivered))
	assert.False(t, StatusDelivered.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusPending))
}
