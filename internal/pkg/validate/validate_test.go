package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"a@b.com", true},
		{"first.last@sub.domain.co", true},
		{"user+tag@example.org", true},
		{"", false},
		{"plainaddress", false},
		{"no-at.example.com", false},
		{"missing-tld@host", false},
		{"spaces in@example.com", false},
		{"user@do main.com", false},
		{"@example.com", false},
		{"user@", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, Email(c.in), "input %q", c.in)
	}
}

func TestStruct(t *testing.T) {
	type req struct {
		Email string `validate:"required"`
	}
	assert.NoError(t, Struct(&req{Email: "x"}))
	err := Struct(&req{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Email")
}
