package subscription

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/silentpayments-indexer/common/errs"
)

// SubscriptionBufferSize is the buffer size of the subscription channel.
// It is used to prevent blocking the producer when the client is slow to consume values.
var SubscriptionBufferSize = 8

// Subscription forwards a stream of values from a producer to a client channel.
// Errors are delivered on a separate channel.
//
// The producer calls Send/SendError and finally Close. The client may stop early with Unsubscribe.
// Done is closed once the forwarding loop has stopped, either because every value
// sent before Close was delivered or because the client unsubscribed.
type Subscription[T any] struct {
	channel chan<- T
	in      chan T
	err     chan error

	closeOnce sync.Once
	closing   chan struct{}

	quitOnce sync.Once
	quit     chan struct{}
	quitDone chan struct{}
}

func NewSubscription[T any](channel chan<- T) *Subscription[T] {
	subscription := &Subscription[T]{
		channel:  channel,
		in:       make(chan T, SubscriptionBufferSize),
		err:      make(chan error, SubscriptionBufferSize),
		closing:  make(chan struct{}),
		quit:     make(chan struct{}),
		quitDone: make(chan struct{}),
	}
	go subscription.run()
	return subscription
}

// Close marks the end of the stream. Buffered values are still delivered. Send must not be called after Close.
func (s *Subscription[T]) Close() {
	s.closeOnce.Do(func() {
		close(s.closing)
	})
}

func (s *Subscription[T]) Unsubscribe() {
	_ = s.UnsubscribeWithContext(context.Background())
}

func (s *Subscription[T]) UnsubscribeWithContext(ctx context.Context) error {
	s.quitOnce.Do(func() {
		close(s.quit)
	})
	select {
	case <-s.quitDone:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// Client returns a client subscription for this subscription.
func (s *Subscription[T]) Client() *ClientSubscription[T] {
	return &ClientSubscription[T]{
		subscription: s,
	}
}

// Err returns the error channel of the subscription.
func (s *Subscription[T]) Err() <-chan error {
	return s.err
}

// Done returns the done channel of the subscription
func (s *Subscription[T]) Done() <-chan struct{} {
	return s.quitDone
}

// IsClosed returns status of the subscription
func (s *Subscription[T]) IsClosed() bool {
	select {
	case <-s.quitDone:
		return true
	default:
		return false
	}
}

// Send sends a value to the subscription channel. If the subscription is closed, it returns an error.
func (s *Subscription[T]) Send(ctx context.Context, value T) error {
	if s.IsClosed() {
		return errors.Wrap(errs.Closed, "subscription is closed")
	}
	select {
	case s.in <- value:
	case <-s.quitDone:
		return errors.Wrap(errs.Closed, "subscription is closed")
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
	return nil
}

// SendError sends an error to the subscription error channel. If the subscription is closed, it returns an error.
func (s *Subscription[T]) SendError(ctx context.Context, err error) error {
	if s.IsClosed() {
		return errors.Wrap(errs.Closed, "subscription is closed")
	}
	select {
	case s.err <- err:
	case <-s.quitDone:
		return errors.Wrap(errs.Closed, "subscription is closed")
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
	return nil
}

func (s *Subscription[T]) run() {
	defer close(s.quitDone)

	for {
		select {
		case <-s.quit:
			return
		case value := <-s.in:
			if !s.forward(value) {
				return
			}
		case <-s.closing:
			for {
				select {
				case value := <-s.in:
					if !s.forward(value) {
						return
					}
				default:
					return
				}
			}
		}
	}
}

func (s *Subscription[T]) forward(value T) bool {
	select {
	case s.channel <- value:
		return true
	case <-s.quit:
		return false
	}
}
