package validate_test

import (
	"testing"

	"github.com/dmitrovia/keypair-tool/internal/functions/validate"
	"github.com/dmitrovia/keypair-tool/internal/models/keymodels"
	"github.com/stretchr/testify/assert"
)

func TestIsMatchesTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tn      string
		value   string
		pattern string
		exp     bool
		experr  bool
	}{
		{tn: "1", value: "hex", pattern: keymodels.MethodPattern, exp: true},
		{tn: "2", value: "BASE64", pattern: keymodels.MethodPattern, exp: true},
		{tn: "3", value: "pem", pattern: keymodels.MethodPattern, exp: false},
		{tn: "4", value: "", pattern: keymodels.MethodPattern, exp: false},
		{tn: "5", value: "x", pattern: "(", experr: true},
	}

	for _, test := range tests {
		t.Run(test.tn, func(t *testing.T) {
			t.Parallel()

			res, err := validate.IsMatchesTemplate(test.value, test.pattern)
			if test.experr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.exp, res, test.tn)
		})
	}
}
