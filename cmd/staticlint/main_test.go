package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tn    string
		name  string
		names []string
		exp   bool
	}{
		{tn: "1", name: "SA1019", names: []string{"SA1*"}, exp: true},
		{tn: "2", name: "SA4006", names: []string{"SA1*"}, exp: false},
		{tn: "3", name: "S1002", names: []string{"S1002"}, exp: true},
		{tn: "4", name: "S1002", names: nil, exp: false},
		{tn: "5", name: "SA1000", names: []string{"*"}, exp: true},
	}

	for _, test := range tests {
		t.Run(test.tn, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.exp, selected(test.name, test.names))
		})
	}
}

func TestGetAnalaysers(t *testing.T) {
	t.Parallel()

	cfg, err := getCfg()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Staticcheck)

	names := make(map[string]bool)
	for _, v := range getAnalaysers(cfg) {
		names[v.Name] = true
	}

	assert.True(t, names["mainosexit"])
	assert.True(t, names["SA1019"])
	assert.True(t, names["S1002"])
	assert.False(t, names["SA2000"])
}
