package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_DeliversToUserConnections(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := NewHub(ctx)
	go hub.Run()

	userID := uuid.New()
	client := &Client{hub: hub, userID: userID, send: make(chan []byte, 1)}
	other := &Client{hub: hub, userID: uuid.New(), send: make(chan []byte, 1)}
	hub.Register(client)
	hub.Register(other)

	require.Eventually(t, func() bool { return hub.ClientCount(userID) == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, hub.BroadcastToUser(userID, "notification", map[string]string{"type": "MATCH_FOUND"}))

	select {
	case raw := <-client.send:
		var msg struct {
			Type string            `json:"type"`
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, "notification", msg.Type)
		assert.Equal(t, "MATCH_FOUND", msg.Data["type"])
	case <-time.After(time.Second):
		t.Fatal("сообщение не доставлено")
	}
	assert.Empty(t, other.send)

	hub.Unregister(client)
	require.Eventually(t, func() bool { return hub.ClientCount(userID) == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_StoppedHubRejectsBroadcast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(ctx)
	cancel()

	for i := 0; i < cap(hub.broadcast); i++ {
		hub.broadcast <- message{}
	}

	assert.Error(t, hub.BroadcastToUser(uuid.New(), "notification", nil))
}
