package bbcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"b", true},
		{"H1", true},
		{"my-tag_2", true},
		{"", false},
		{"a b", false},
		{"a=b", false},
		{"*", false},
		{"é", false},
		{"/b", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidName(tt.name))
		})
	}
}

func TestTagModel(t *testing.T) {
	m := NewTagModel(map[string]TagShape{
		"b":       {},
		"br":      {Void: true, Value: ValueForbidden},
		"url":     {Value: ValueOptional},
		"bad one": {},
	}, true)

	assert.True(t, m.Closed())
	assert.Equal(t, []string{"b", "br", "url"}, m.Names())
	assert.True(t, m.Accepts("b"))
	assert.False(t, m.Accepts("script"))
	assert.False(t, m.Accepts("bad one"))

	shape, ok := m.Lookup("br")
	require.True(t, ok)
	assert.True(t, shape.Void)
	assert.Equal(t, "forbidden", shape.Value.String())
}

func TestOpenTagModel(t *testing.T) {
	for _, m := range []*TagModel{OpenTagModel(), nil, {}} {
		assert.False(t, m.Closed())
		assert.True(t, m.Accepts("anything"))
		assert.False(t, m.Accepts("not valid"))
		_, ok := m.Lookup("b")
		assert.False(t, ok)
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	_, err := NewTokenizerWithConfig("[b]", Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewTokenizerWithConfig("[b]", Config{MaxDepth: -1})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValueRuleText(t *testing.T) {
	for _, v := range []ValueRule{ValueOptional, ValueRequired, ValueForbidden} {
		text, err := v.MarshalText()
		require.NoError(t, err)

		var got ValueRule
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, v, got)
	}

	var v ValueRule
	assert.Error(t, v.UnmarshalText([]byte("sometimes")))
	_, err := ValueRule(9).MarshalText()
	assert.Error(t, err)
}
