package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudent_String(t *testing.T) {
	s := &Student{ID: "1", Firstname: "a", Lastname: "b", Email: "c@d", Address: "e", Score: 5.5}
	assert.Equal(t, "1\ta b\tc@d\te\t5.5", s.String())
}
