package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestError_Error(t *testing.T) {

	err := &RequestError{StatusCode: 404, Body: `{"error":"not found"}`}

	assert.Equal(t, `status: 404 message: {"error":"not found"}`, err.Error())
	assert.NotContains(t, err.Error(), "<nil>")
}
