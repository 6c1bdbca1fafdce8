// Package notifications delivers one-way chat-webhook messages. Delivery is
// best effort: failures are logged and swallowed, never surfaced to the
// request that triggered them.
package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"api/schemas"
)

const sendTimeout = 10 * time.Second

type Webhook struct {
	url    string
	await  bool
	log    *slog.Logger
	client *http.Client
}

// New returns nil when no webhook URL is configured; a nil *Webhook is valid
// and drops every notification.
func New(url string, await bool, log *slog.Logger) *Webhook {
	if url == "" {
		return nil
	}

	return &Webhook{
		url:    url,
		await:  await,
		log:    log,
		client: &http.Client{Timeout: sendTimeout},
	}
}

// ApplicationReceived announces a new care application. With await set the
// call blocks until delivery finishes (still swallowing errors); otherwise
// it fires and forgets.
func (wh *Webhook) ApplicationReceived(app *schemas.Application) {
	if wh == nil {
		return
	}

	text := formatApplication(app)
	if wh.await {
		wh.send(text)
		return
	}

	go wh.send(text)
}

func (wh *Webhook) send(text string) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		wh.log.Error("webhook payload marshal failed", "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, wh.url, bytes.NewReader(payload))
	if err != nil {
		wh.log.Error("webhook request build failed", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := wh.client.Do(req)
	if err != nil {
		wh.log.Warn("webhook delivery failed", "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		wh.log.Warn("webhook delivery rejected", "status", resp.StatusCode)
	}
}

func formatApplication(app *schemas.Application) string {
	var b strings.Builder
	b.WriteString("New mattress care application\n")
	fmt.Fprintf(&b, "Name: %s\n", app.Name)
	fmt.Fprintf(&b, "Phone: %s\n", app.Phone)
	fmt.Fprintf(&b, "Address: %s %s\n", app.Address, app.DetailAddress)
	if app.MattressType != "" {
		fmt.Fprintf(&b, "Mattress: %s (%s)\n", app.MattressType, app.MattressAge)
	}
	if app.PreferredDate != "" || app.PreferredTime != "" {
		fmt.Fprintf(&b, "Preferred: %s %s\n", app.PreferredDate, app.PreferredTime)
	}
	if app.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", app.Message)
	}
	return strings.TrimRight(b.String(), "\n")
}
