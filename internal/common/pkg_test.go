package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackageToken(t *testing.T) {
	tests := []struct {
		pkgPath string
		want    string
	}{
		{"", ""},
		{"billing", "Billing"},
		{"binding-generator/examples/sample", "Sample"},
		{"example.com/billing-core/v2", "Billingcore"},
		{"gopkg.in/yaml.v3", "Yaml"},
		{"v2", "V2"},
		{"example.com/_/orders", "Orders"},
	}

	for _, tt := range tests {
		t.Run(tt.pkgPath, func(t *testing.T) {
			assert.Equal(t, tt.want, PackageToken(tt.pkgPath))
		})
	}
}
