package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	applog "fashionfuel/internal/log"
)

// Notifier POSTs JSON payloads to a configured automation endpoint.
// Webhook delivery is a side effect of an already-committed primary action,
// so failures are logged as non-fatal and never block the caller.
type Notifier struct {
	URL    string
	Name   string
	Client *http.Client
}

func New(name, url string) *Notifier {
	return &Notifier{URL: url, Name: name, Client: &http.Client{Timeout: 10 * time.Second}}
}

func (n *Notifier) Notify(ctx context.Context, payload any) {
	if n == nil || n.URL == "" {
		return
	}
	b, err := json.Marshal(payload)
	if err != nil {
		applog.NonFatal(nil, "webhook.marshal.fail", err, map[string]any{"hook": n.Name})
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewReader(b))
	if err != nil {
		applog.NonFatal(nil, "webhook.request.fail", err, map[string]any{"hook": n.Name})
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := n.Client.Do(req)
	if err != nil {
		applog.NonFatal(nil, "webhook.send.fail", err, map[string]any{"hook": n.Name})
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		applog.NonFatal(nil, "webhook.send.fail",
			fmt.Errorf("status %d", resp.StatusCode), map[string]any{"hook": n.Name})
	}
}
