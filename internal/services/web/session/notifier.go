package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Jnavarr56/ifhelper-web/internal/platform/timeouts"
	"golang.org/x/sync/errgroup"
)

// SignOutClient notifies the API that a credential was discarded.
type SignOutClient interface {
	SignOut(ctx context.Context, token string) error
}

// NotifierConfig sizes the sign-out worker pool.
type NotifierConfig struct {
	Workers   int
	QueueSize int
	Timeout   time.Duration
	// Logf receives dispatch and delivery failures. Defaults to log.Printf.
	Logf func(format string, args ...any)
}

// Notifier delivers sign-out notifications in the background. Delivery
// outcome never reaches the caller.
type Notifier struct {
	client  SignOutClient
	timeout time.Duration
	logf    func(format string, args ...any)

	queue  chan string
	errs   chan error
	ctx    context.Context
	cancel context.CancelFunc
	group  errgroup.Group

	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
	logDone   chan struct{}
}

// NewNotifier starts the worker pool.
func NewNotifier(client SignOutClient, cfg NotifierConfig) *Notifier {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = workers * 16
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.SignOutNotify
	}
	logf := cfg.Logf
	if logf == nil {
		logf = log.Printf
	}

	ctx, cancel := context.WithCancel(context.Background())
	n := &Notifier{
		client:  client,
		timeout: timeout,
		logf:    logf,
		queue:   make(chan string, queueSize),
		errs:    make(chan error, workers),
		ctx:     ctx,
		cancel:  cancel,
		logDone: make(chan struct{}),
	}
	go n.logErrors()
	for range workers {
		n.group.Go(n.work)
	}
	return n
}

// Dispatch enqueues token without blocking. A full queue or a closed
// notifier drops the notification.
func (n *Notifier) Dispatch(token string) {
	if n == nil || token == "" {
		return
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		n.logf("session: sign-out notification dropped reason=closed")
		return
	}
	select {
	case n.queue <- token:
	default:
		n.logf("session: sign-out notification dropped reason=queue_full")
	}
}

// Close stops accepting work, cancels in-flight calls and waits for the
// workers to exit.
func (n *Notifier) Close() error {
	if n == nil {
		return nil
	}
	var err error
	n.closeOnce.Do(func() {
		n.mu.Lock()
		n.closed = true
		close(n.queue)
		n.mu.Unlock()

		n.cancel()
		err = n.group.Wait()
		close(n.errs)
		<-n.logDone
	})
	return err
}

func (n *Notifier) work() error {
	for token := range n.queue {
		if n.client == nil {
			continue
		}
		if err := n.ctx.Err(); err != nil {
			n.errs <- fmt.Errorf("sign-out skipped: %w", err)
			continue
		}
		ctx, cancel := context.WithTimeout(n.ctx, n.timeout)
		err := n.client.SignOut(ctx, token)
		cancel()
		if err != nil {
			n.errs <- fmt.Errorf("sign-out notify: %w", err)
		}
	}
	return nil
}

func (n *Notifier) logErrors() {
	defer close(n.logDone)
	for err := range n.errs {
		if errors.Is(err, context.Canceled) {
			n.logf("session: sign-out notification cancelled err=%v", err)
			continue
		}
		n.logf("session: sign-out notification failed err=%v", err)
	}
}
