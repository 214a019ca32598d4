package lnhttp_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/spechtlabs/clusterman/pkg/lnhttp"
	"github.com/stretchr/testify/require"
)

// capturingProvider wraps TCPListenerProvider and records the listener so the
// test can discover the dynamically assigned port.
type capturingProvider struct {
	lnhttp.TCPListenerProvider
	ln net.Listener
}

func (p *capturingProvider) Listen(ctx context.Context, network, address string) (net.Listener, error) {
	ln, err := p.TCPListenerProvider.Listen(ctx, network, address)
	if err != nil {
		return nil, err
	}
	p.ln = ln
	return ln, nil
}

func TestServer_ServeAndShutdown(t *testing.T) {
	provider := &capturingProvider{}
	srv := lnhttp.NewServer(&http.Server{Addr: "127.0.0.1:0"}, provider)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	})

	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(context.Background(), handler)
	}()

	require.Eventually(t, func() bool { return provider.ln != nil }, time.Second, 10*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://%s/", provider.ln.Addr()))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", string(body))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(shutdownCtx))

	// Serve returns nil on graceful shutdown
	require.NoError(t, <-done)
}

func TestServer_NilProvider(t *testing.T) {
	srv := lnhttp.NewServer(nil, nil)
	err := srv.Serve(context.Background(), http.NotFoundHandler())
	require.Error(t, err)
}
