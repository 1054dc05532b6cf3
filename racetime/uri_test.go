package racetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURI(t *testing.T) {
	tests := []struct {
		name    string
		scheme  string
		path    string
		want    string
		wantErr bool
	}{
		{
			name:   "https path",
			scheme: "https",
			path:   "/o/token",
			want:   "https://racetime.gg/o/token",
		},
		{
			name:   "websocket scheme",
			scheme: "wss",
			path:   "/ws/o/bot/abc123",
			want:   "wss://racetime.gg/ws/o/bot/abc123",
		},
		{
			name:   "root path",
			scheme: "https",
			path:   "/",
			want:   "https://racetime.gg/",
		},
		{
			name:    "invalid escape in path",
			scheme:  "https",
			path:    "/o/%zz/startrace",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := BuildURI(tt.scheme, tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
			assert.Equal(t, Host, u.Host)
			assert.Equal(t, tt.scheme, u.Scheme)
			assert.Equal(t, tt.path, u.Path)
		})
	}
}

func TestHTTPURI(t *testing.T) {
	u, err := HTTPURI("/o/token")
	require.NoError(t, err)
	assert.Equal(t, "https://racetime.gg/o/token", u.String())
	assert.Equal(t, "https", u.Scheme)
}
