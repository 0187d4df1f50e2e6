package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	all := All()

	assert.Len(t, all, 1)
	assert.IsType(t, &History{}, all[0])
}
