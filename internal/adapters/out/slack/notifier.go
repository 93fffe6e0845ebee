// Package slack posts staff notifications to an incoming webhook.
package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/pkg/errors"
)

// Notifier implements ports.Notifier over one channel webhook.
type Notifier struct {
	webhookURL string
	httpc      *http.Client
}

func New(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		httpc: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Notify posts the notification as a single text message. Callers treat
// failures as non-fatal; this method only reports them.
func (n *Notifier) Notify(ctx context.Context, notification ports.Notification) error {
	if err := n.post(ctx, notification); err != nil {
		return errs.NewExternalDependencyError("slack", err)
	}
	return nil
}

func (n *Notifier) post(ctx context.Context, notification ports.Notification) error {
	payload, err := json.Marshal(map[string]string{
		"text": format(notification),
	})
	if err != nil {
		return errors.Wrap(err, "marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, strings.NewReader(string(payload)))
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpc.Do(req)
	if err != nil {
		return errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("slack webhook http %d", resp.StatusCode)
	}

	return nil
}

func format(notification ports.Notification) string {
	var b strings.Builder

	if notification.Kind != "" {
		b.WriteString("[" + notification.Kind + "] ")
	}
	b.WriteString(notification.Message)
	if notification.OrderNumber != "" {
		b.WriteString(" (order " + notification.OrderNumber + ")")
	}
	if len(notification.Roles) > 0 {
		b.WriteString(" @" + strings.Join(notification.Roles, " @"))
	}

	return b.String()
}
