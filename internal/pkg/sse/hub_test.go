package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHubSubscribePublish(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe(UserTopic("u1"))
	defer cleanup()

	hub.Publish(UserTopic("u1"), Event{Event: "attendance.updated", Data: "x"})

	ev := <-ch
	assert.Equal(t, "attendance.updated", ev.Event)
	assert.Equal(t, "x", ev.Data)
}

func TestHubPublishDoesNotCrossTopics(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe(UserTopic("u1"))
	defer cleanup()

	hub.Publish(UserTopic("u2"), Event{Event: "leave.updated"})

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event delivered across topics: %+v", ev)
	default:
	}
}

func TestHubCleanupReleasesSubscription(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe(TopicAdmin)
	assert.Equal(t, 1, hub.SubscriberCount(TopicAdmin))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount(TopicAdmin))
	assert.Equal(t, 0, hub.TotalSubscribers())
}

func TestHubPublishToMany(t *testing.T) {
	hub := NewHub()

	userCh, userCleanup := hub.Subscribe(UserTopic("u1"))
	defer userCleanup()
	adminCh, adminCleanup := hub.Subscribe(TopicAdmin)
	defer adminCleanup()

	hub.PublishToMany([]string{UserTopic("u1"), TopicAdmin}, Event{Event: "leave.updated"})

	assert.Equal(t, "leave.updated", (<-userCh).Event)
	assert.Equal(t, "leave.updated", (<-adminCh).Event)
}

func TestHubFullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe(UserTopic("u1"))
	defer cleanup()

	// Channel buffer is 10; publishing more must not deadlock.
	for i := 0; i < 25; i++ {
		hub.Publish(UserTopic("u1"), Event{Event: "attendance.updated"})
	}
}
