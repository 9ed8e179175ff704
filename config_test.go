package corosort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, float64(0), cfg.TargetLatencyUsec)
	assert.Equal(t, "result.txt", cfg.OutputPath)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero latency is valid (zero quantum)", Config{TargetLatencyUsec: 0, OutputPath: "out.txt"}, false},
		{"positive latency is valid", Config{TargetLatencyUsec: 1000, OutputPath: "out.txt"}, false},
		{"negative latency is invalid", Config{TargetLatencyUsec: -1, OutputPath: "out.txt"}, true},
		{"empty output path is invalid", Config{TargetLatencyUsec: 0, OutputPath: ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(&tt.cfg)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
