package httputil

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStartStop(t *testing.T) {
	srv, err := StartHTTPServer("127.0.0.1:0", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	}))
	require.NoError(t, err)
	require.False(t, srv.Closed())

	resp, err := http.Get(srv.HTTPEndpoint())
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	require.Equal(t, "pong", string(body))

	require.NoError(t, srv.Stop(context.Background()))
	require.True(t, srv.Closed())
	require.Nil(t, srv.Addr())
	require.Equal(t, "", srv.HTTPEndpoint())

	// the server can be brought back up
	require.NoError(t, srv.Start())
	require.NoError(t, srv.Close())
}
