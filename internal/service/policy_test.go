package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPolicy(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		ok     bool
	}{
		{name: "strong four classes", secret: "Tr0ub4dor&3!!", ok: true},
		{name: "three classes no symbol", secret: "Troubador3333", ok: true},
		{name: "three classes no digit", secret: "Troubadorrrr!", ok: true},
		{name: "too short", secret: "Tr0ub4&", ok: false},
		{name: "single class", secret: "abcabcabcabcabc", ok: false},
		{name: "two classes", secret: "abcabcabc123456", ok: false},
		{name: "empty", secret: "", ok: false},
		{name: "exactly minimum length", secret: "Aa1!Aa1!Aa1!", ok: true},
		{name: "one under minimum length", secret: "Aa1!Aa1!Aa1", ok: false},
		{name: "exactly maximum length", secret: "Aa1!" + strings.Repeat("x", 60), ok: true},
		{name: "over maximum length", secret: "Aa1!" + strings.Repeat("x", 61), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPolicy([]byte(tt.secret))
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrPolicyNotMet)
			}
		})
	}
}
