package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintReplyHidesFailureCause(t *testing.T) {
	err := printReply("", errors.New("api key leaked in message"))
	require.Error(t, err)
	assert.Equal(t, "sommelier request failed", err.Error())
	assert.NotContains(t, err.Error(), "leaked")
}

func TestPrintReplySuccess(t *testing.T) {
	assert.NoError(t, printReply("Try the Ridge Monte Bello.", nil))
}
