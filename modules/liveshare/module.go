// Package liveshare mirrors accepted editor mutations to a remote
// collaboration endpoint over socket.io. Only informational post-events
// are forwarded; the module never vetoes and never transforms, so a dead
// or slow remote can at worst delay an emission, never corrupt the store.
package liveshare

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/flowgridgo/internal/ctxlog"
	"github.com/vk/flowgridgo/internal/model"
)

// connectTimeout bounds the initial handshake; forwarding itself is
// fire-and-forget.
const connectTimeout = 15 * time.Second

// Module implements the extension.Extension interface for this package.
type Module struct {
	// URL is the socket.io endpoint, e.g. "wss://share.example.com/graph".
	URL string
	// Namespace selects the socket.io namespace; empty means the default.
	Namespace string
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool

	io *socket.Socket
}

// Name identifies the extension.
func (m *Module) Name() string {
	return "liveshare"
}

// Attach connects to the remote endpoint and registers the forwarding
// pipe on the editor's scope. Connection failure aborts startup.
func (m *Module) Attach(ctx context.Context, ed *model.Editor) error {
	logger := ctxlog.FromContext(ctx).With("extension", "liveshare", "url", m.URL)
	logger.Info("Connecting to collaboration endpoint...")

	parsedURL, err := url.Parse(m.URL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if m.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(m.Namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Connected", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		connectChan <- errs[0].(error)
	})

	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		io.Disconnect()
		return fmt.Errorf("context cancelled while waiting for socket.io connection")
	case <-time.After(connectTimeout):
		io.Disconnect()
		return fmt.Errorf("timed out after %s waiting for socket.io connection", connectTimeout)
	}

	m.io = io
	ed.Scope().AddPipe(func(ctx context.Context, ev model.Event) (model.Event, bool, error) {
		if ev.Kind.Pre() {
			return ev, true, nil
		}
		m.io.Emit("graph:event", payload(ed, ev))
		return ev, true, nil
	})
	return nil
}

// Close disconnects from the remote endpoint.
func (m *Module) Close() error {
	if m.io != nil {
		m.io.Disconnect()
		m.io = nil
	}
	return nil
}

// payload flattens an event into the wire shape shared with the remote.
func payload(ed *model.Editor, ev model.Event) map[string]any {
	p := map[string]any{
		"editor": ed.Name(),
		"event":  string(ev.Kind),
	}
	switch {
	case ev.Node != nil:
		p["node"] = ev.Node
	case ev.Connection != nil:
		p["connection"] = ev.Connection
	case ev.Snapshot != nil:
		p["snapshot"] = ev.Snapshot
	}
	return p
}
