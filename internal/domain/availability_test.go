package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryAvailability(t *testing.T) {
	p := BinaryAvailability()

	assert.Equal(t, 1, p.Units())
	assert.True(t, p.Available(0))
	assert.False(t, p.Available(1))
	assert.False(t, p.Available(3))
}

func TestFixedInventory(t *testing.T) {
	p := FixedInventory(5)

	assert.Equal(t, 5, p.Units())
	assert.True(t, p.Available(4))
	assert.False(t, p.Available(5))
	assert.Equal(t, 2, p.FreeUnits(3))
	assert.Equal(t, 0, p.FreeUnits(7), "free units never go negative")
}

func TestFixedInventory_ClampsToOneUnit(t *testing.T) {
	assert.Equal(t, 1, FixedInventory(0).Units())
	assert.Equal(t, 1, FixedInventory(-3).Units())
}
