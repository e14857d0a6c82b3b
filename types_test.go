package airbridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmission_Get(t *testing.T) {
	sub := Submission{
		"name":  {"Ada"},
		"email": {"ada@example.com", "second@example.com"},
		"empty": {},
	}

	value, ok := sub.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "Ada", value)

	// Repeated keys resolve to the first value
	value, ok = sub.Get("email")
	assert.True(t, ok)
	assert.Equal(t, "ada@example.com", value)

	_, ok = sub.Get("missing")
	assert.False(t, ok)

	_, ok = sub.Get("empty")
	assert.False(t, ok)
}

func TestSubmission_List(t *testing.T) {
	sub := Submission{
		"causes[]": {"No Poverty", "Quality Education"},
		"empty":    {},
	}

	values := sub.List("causes[]")
	assert.Equal(t, []string{"No Poverty", "Quality Education"}, values)

	// The returned slice is a copy
	values[0] = "mutated"
	assert.Equal(t, "No Poverty", sub["causes[]"][0])

	assert.Nil(t, sub.List("empty"))
	assert.Nil(t, sub.List("missing"))
}
