package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoteURL(t *testing.T) {
	t.Parallel()

	validate := New()

	tests := []struct {
		source string
		valid  bool
	}{
		{source: "http://example.com/weblog.csv", valid: true},
		{source: "https://s3.amazonaws.com/logs/weblog.csv", valid: true},
		{source: "file:///var/log/weblog.csv", valid: false},
		{source: "file:///etc/passwd", valid: false},
		{source: "http://", valid: false},
		{source: "ftp://example.com/weblog.csv", valid: false},
		{source: "weblog.csv", valid: false},
		{source: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			err := validate.Var(tt.source, "required,"+TagRemoteURL)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
