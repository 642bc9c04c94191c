package telegram

import (
	"errors"
	"net"
	"net/url"
	"sync/atomic"
	"testing"
	"time"
)

func TestSenderRunsJobs(t *testing.T) {
	s := NewSender(SenderOptions{QueueSize: 8, Workers: 1})
	defer s.Close()

	done := make(chan struct{})
	if err := s.Enqueue("test", 1, func() error {
		close(done)
		return nil
	}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job was not executed")
	}
}

func TestSenderRetriesTransientErrors(t *testing.T) {
	s := NewSender(SenderOptions{QueueSize: 8, Workers: 1, MaxRetries: 2, RetryBackoff: time.Millisecond})
	defer s.Close()

	var attempts atomic.Int32
	done := make(chan struct{})
	err := s.Enqueue("test", 1, func() error {
		if attempts.Add(1) < 3 {
			return &net.OpError{Op: "dial", Err: errors.New("refused")}
		}
		close(done)
		return nil
	})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job never succeeded")
	}
	if got := attempts.Load(); got != 3 {
		t.Errorf("attempts = %d, want 3", got)
	}
}

func TestSenderEnqueueAfterClose(t *testing.T) {
	s := NewSender(SenderOptions{QueueSize: 1, Workers: 1})
	s.Close()

	err := s.Enqueue("test", 1, func() error { return nil })
	if !errors.Is(err, ErrQueueClosed) {
		t.Errorf("err = %v, want ErrQueueClosed", err)
	}
}

func TestShouldRetry(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("plain"), false},
		{&net.OpError{Op: "dial", Err: errors.New("refused")}, true},
		{&net.OpError{Op: "read", Err: errors.New("reset")}, false},
		{&url.Error{Op: "Get", URL: "https://api.telegram.org", Err: &net.OpError{Op: "dial", Err: errors.New("refused")}}, true},
	}
	for _, tc := range cases {
		if got := shouldRetry(tc.err); got != tc.want {
			t.Errorf("shouldRetry(%v) = %t, want %t", tc.err, got, tc.want)
		}
	}
}
