// Package notify forwards movement codes to the paired device over HTTP.
package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/core"
)

// DefaultTimeout bounds a request when the config leaves it unset.
const DefaultTimeout = 2 * time.Second

// HTTPNotifier posts each movement code as a form field. Delivery is fire and
// forget: Notify never blocks, and failures are only logged at debug level.
type HTTPNotifier struct {
	url    string
	client *http.Client
	logger *log.Logger
	wg     sync.WaitGroup
}

// New creates a notifier for the given settings. A nil logger discards output.
func New(cfg config.Notify, logger *log.Logger) *HTTPNotifier {
	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &HTTPNotifier{
		url:    cfg.URL,
		client: &http.Client{Timeout: timeout},
		logger: logger.WithPrefix("notify"),
	}
}

// Notify sends code in the background.
func (n *HTTPNotifier) Notify(code core.MoveCode) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if err := n.Send(context.Background(), code); err != nil {
			n.logger.Debug("move not delivered", "direction", code, "err", err)
		}
	}()
}

// Send posts code and waits for the response. The response body is discarded.
func (n *HTTPNotifier) Send(ctx context.Context, code core.MoveCode) error {
	form := url.Values{"direction": {string(code)}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("notify: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("notify: post %s: %w", code, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body) //nolint:errcheck

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("notify: post %s: status %d", code, resp.StatusCode)
	}
	return nil
}

// Wait blocks until every pending notification has finished.
func (n *HTTPNotifier) Wait() {
	n.wg.Wait()
}
