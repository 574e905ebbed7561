package notifications

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/chans00n/myfc-app-sub001/internal/models"
	"github.com/chans00n/myfc-app-sub001/pkg/logger"
)

// Bus fans out preference changes to live subscribers. Subscription delivery
// covers future changes only; SubscribePreferences layers the seed fetch on
// top.
type Bus interface {
	Publish(prefs models.NotificationPreferences) error
	Subscribe(userID string, fn func(models.NotificationPreferences)) (func(), error)
}

var bus Bus = NewMemoryBus()

// SetBus swaps the fan-out transport. Called once at startup, before any
// subscriber exists.
func SetBus(b Bus) {
	bus = b
}

// SubscribePreferences keeps onChange supplied with the user's current
// preferences: an explicit seed fetch first (the bus alone does not replay
// current state), then every subsequent server-side change. The returned
// function cancels the subscription. A failed seed fetch is surfaced; callers
// must not assume default-on preferences from it.
func SubscribePreferences(userID string, onChange func(models.NotificationPreferences)) (func(), error) {
	seed, err := GetPreferences(userID)
	if err != nil {
		return nil, err
	}

	unsubscribe, err := bus.Subscribe(userID, onChange)
	if err != nil {
		return nil, err
	}

	onChange(seed)
	return unsubscribe, nil
}

// MemoryBus is an in-process Bus for tests and single-node deployments.
type MemoryBus struct {
	mu   sync.RWMutex
	next int
	subs map[string]map[int]func(models.NotificationPreferences)
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: make(map[string]map[int]func(models.NotificationPreferences))}
}

func (b *MemoryBus) Publish(prefs models.NotificationPreferences) error {
	b.mu.RLock()
	fns := make([]func(models.NotificationPreferences), 0, len(b.subs[prefs.UserID]))
	for _, fn := range b.subs[prefs.UserID] {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(prefs)
	}
	return nil
}

func (b *MemoryBus) Subscribe(userID string, fn func(models.NotificationPreferences)) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[userID] == nil {
		b.subs[userID] = make(map[int]func(models.NotificationPreferences))
	}
	id := b.next
	b.next++
	b.subs[userID][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[userID], id)
	}, nil
}

const prefChannelPrefix = "prefs:"

// RedisBus fans preference changes out over Redis pub/sub so every server
// instance converges, not just the one that handled the update.
type RedisBus struct {
	client *redis.Client
}

func NewRedisBus(client *redis.Client) *RedisBus {
	return &RedisBus{client: client}
}

func (b *RedisBus) Publish(prefs models.NotificationPreferences) error {
	payload, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return b.client.Publish(context.Background(), prefChannelPrefix+prefs.UserID, payload).Err()
}

func (b *RedisBus) Subscribe(userID string, fn func(models.NotificationPreferences)) (func(), error) {
	sub := b.client.Subscribe(context.Background(), prefChannelPrefix+userID)
	if _, err := sub.Receive(context.Background()); err != nil {
		sub.Close()
		return nil, err
	}

	go func() {
		for msg := range sub.Channel() {
			var prefs models.NotificationPreferences
			if err := json.Unmarshal([]byte(msg.Payload), &prefs); err != nil {
				logger.Warn().Err(err).Str("channel", msg.Channel).Msg("Dropping malformed preference event")
				continue
			}
			fn(prefs)
		}
	}()

	return func() { sub.Close() }, nil
}
