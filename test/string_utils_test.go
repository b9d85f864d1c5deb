package main

import (
	"testing"

	"pricewise/utils"

	"github.com/stretchr/testify/assert"
)

func TestParseLeadingNumber(t *testing.T) {
	assert.Equal(t, 8.0, utils.ParseLeadingNumber("8GB"))
	assert.Equal(t, 128.0, utils.ParseLeadingNumber("128GB"))
	assert.Equal(t, 6.1, utils.ParseLeadingNumber("6.1 inches"))
	assert.Equal(t, 4000.0, utils.ParseLeadingNumber("4000mAh"))
	assert.Equal(t, 48.0, utils.ParseLeadingNumber(" 48MP "))
	assert.Equal(t, 6.0, utils.ParseLeadingNumber("6."))
	assert.Equal(t, 0.0, utils.ParseLeadingNumber("GB8"))
	assert.Equal(t, 0.0, utils.ParseLeadingNumber(""))
	assert.Equal(t, 0.0, utils.ParseLeadingNumber(".5"))
}
