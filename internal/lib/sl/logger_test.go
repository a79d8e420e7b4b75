package sl_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mavecode/mavecode-api/internal/lib/sl"
)

func TestNew(t *testing.T) {
	tests := []struct {
		env       string
		wantDebug bool
	}{
		{env: sl.EnvLocal, wantDebug: true},
		{env: sl.EnvDev, wantDebug: true},
		{env: sl.EnvProd, wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			var buf bytes.Buffer
			log := sl.New(tt.env, &buf)

			log.Debug("listening")
			if tt.wantDebug {
				assert.Contains(t, buf.String(), "level=DEBUG msg=listening")
			} else {
				assert.Empty(t, buf.String())
			}

			log.Info("shown")
			assert.Contains(t, buf.String(), "level=INFO msg=shown")
		})
	}
}
