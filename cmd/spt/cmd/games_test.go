package cmd

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apiclient "github.com/donaldgifford/steam-price-tracker/internal/api/client"
)

func TestNotSubscribed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unknown url",
			err:  &apiclient.APIError{StatusCode: http.StatusNotFound, Detail: "notify url not found"},
			want: "game 570 has no such notification URL",
		},
		{
			name: "unknown game",
			err:  &apiclient.APIError{StatusCode: http.StatusNotFound, Detail: "game not found"},
			want: "game 570 is not tracked",
		},
		{
			name: "other failure",
			err:  errors.New("API server not running at http://localhost:8080"),
			want: "API server not running at http://localhost:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.EqualError(t, notSubscribed("570", tt.err), tt.want)
		})
	}
}
