package notify

import (
	"context"
	"sync"
)

// Message is one recorded notification.
type Message struct {
	Title       string
	Description string
	Destructive bool
}

// Spy records notifications for assertions in tests.
type Spy struct {
	mu       sync.Mutex
	Messages []Message
}

func NewSpy() *Spy {
	return &Spy{}
}

func (s *Spy) Notify(_ context.Context, title, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Messages = append(s.Messages, Message{Title: title, Description: description})
}

func (s *Spy) Warn(_ context.Context, title, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Messages = append(s.Messages, Message{Title: title, Description: description, Destructive: true})
}

// Titles returns the recorded titles in order.
func (s *Spy) Titles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.Messages))
	for _, m := range s.Messages {
		out = append(out, m.Title)
	}
	return out
}
