package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageRequest(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		size    int
		wantErr bool
	}{
		{name: "first page", page: 0, size: 20},
		{name: "largest page that fits", page: math.MaxInt / MaxPageSize, size: MaxPageSize},
		{name: "negative page", page: -1, size: 20, wantErr: true},
		{name: "zero size", page: 0, size: 0, wantErr: true},
		{name: "size over max", page: 0, size: MaxPageSize + 1, wantErr: true},
		{name: "offset overflows", page: 1 << 62, size: 20, wantErr: true},
		{name: "offset one past max", page: math.MaxInt/MaxPageSize + 1, size: MaxPageSize, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPageRequest(tt.page, tt.size)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.GreaterOrEqual(t, p.Offset(), 0)
			assert.Equal(t, tt.page*tt.size, p.Offset())
		})
	}
}
