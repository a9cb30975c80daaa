package stream

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
)

const channelPrefix = "focotour:notifications:"

// Hub fans notifications out to the websocket clients of each user. With a
// redis client every message goes through pub/sub so clients connected to
// other instances receive it too; without one delivery is local.
type Hub struct {
	redis   *redis.Client
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex

	cancel context.CancelFunc
	done   chan struct{}
}

type Client struct {
	UserKey string
	Send    chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		redis:   redisClient,
		clients: map[string]map[*Client]struct{}{},
	}
	if redisClient != nil {
		ctx, cancel := context.WithCancel(context.Background())
		h.cancel = cancel
		h.done = make(chan struct{})
		pubsub := redisClient.PSubscribe(ctx, channelPrefix+"*")
		// Wait for the subscription so nothing published right after
		// NewHub returns is missed.
		if _, err := pubsub.Receive(ctx); err != nil {
			log.Printf("stream: redis subscribe failed, delivering locally only: %v", err)
			_ = pubsub.Close()
			cancel()
			h.redis = nil
			close(h.done)
			return h
		}
		go h.subscribeRedis(ctx, pubsub)
	}
	return h
}

func (h *Hub) Register(userKey string) *Client {
	client := &Client{
		UserKey: userKey,
		Send:    make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userKey] == nil {
		h.clients[userKey] = map[*Client]struct{}{}
	}
	h.clients[userKey][client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	userClients, ok := h.clients[client.UserKey]
	if !ok {
		return
	}
	if _, ok := userClients[client]; !ok {
		return
	}
	delete(userClients, client)
	if len(userClients) == 0 {
		delete(h.clients, client.UserKey)
	}
	close(client.Send)
}

// ClientCount reports how many connections userKey has on this instance.
func (h *Hub) ClientCount(userKey string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userKey])
}

// Broadcast delivers payload to every client of userKey.
func (h *Hub) Broadcast(ctx context.Context, userKey string, payload []byte) {
	if h.redis != nil {
		err := h.redis.Publish(ctx, redisChannel(userKey), payload).Err()
		if err == nil {
			return
		}
		log.Printf("stream: redis publish error, delivering locally: %v", err)
	}
	h.deliver(userKey, payload)
}

// Notify lets the hub receive reminders.
func (h *Hub) Notify(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	h.Broadcast(ctx, UserKey(n.UserID), payload)
	return nil
}

func (h *Hub) deliver(userKey string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[userKey] {
		select {
		case client.Send <- payload:
		default:
		}
	}
}

func (h *Hub) subscribeRedis(ctx context.Context, pubsub *redis.PubSub) {
	defer close(h.done)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			userKey := userKeyFromChannel(msg.Channel)
			if userKey == "" {
				continue
			}
			h.deliver(userKey, []byte(msg.Payload))
		}
	}
}

// Close stops the redis subscriber. Registered clients stay open.
func (h *Hub) Close() {
	if h.cancel == nil {
		return
	}
	h.cancel()
	<-h.done
}

func UserKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

func redisChannel(userKey string) string {
	return channelPrefix + userKey
}

func userKeyFromChannel(ch string) string {
	if !strings.HasPrefix(ch, channelPrefix) {
		return ""
	}
	return ch[len(channelPrefix):]
}
