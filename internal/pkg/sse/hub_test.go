package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishSubscribe(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe(TopicScans)
	defer cleanup()

	hub.Publish(Event{Topic: TopicScans, Name: "scan", Data: "payload"})

	select {
	case event := <-ch:
		assert.Equal(t, "scan", event.Name)
		assert.Equal(t, "payload", event.Data)
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestHubTopicIsolation(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("other")
	defer cleanup()

	hub.Publish(Event{Topic: TopicScans, Name: "scan"})

	select {
	case <-ch:
		t.Fatal("event leaked across topics")
	default:
	}
}

func TestHubCleanup(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe(TopicScans)
	require.Equal(t, 1, hub.SubscriberCount(TopicScans))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount(TopicScans))

	// Publishing with no subscribers must not panic.
	hub.Publish(Event{Topic: TopicScans, Name: "scan"})
}

func TestHubSlowSubscriberDropped(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe(TopicScans)
	defer cleanup()

	// Overflow the buffer; extra events are dropped, not blocking.
	for i := 0; i < cap(ch)+5; i++ {
		hub.Publish(Event{Topic: TopicScans, Name: "scan", Data: i})
	}

	assert.Len(t, ch, cap(ch))
}
