package arena

import (
	"sync"

	"github.com/rsduel/arena-server/internal/game"
)

// TickEvent is what spectators of a fight receive after every resolved tick.
type TickEvent struct {
	Result   *game.TickResult `json:"tick_result"`
	Snapshot *Snapshot        `json:"snapshot"`
}

// Broadcaster fans tick events out to per-fight subscriber sets. Delivery is
// fire-and-forget: a subscriber whose buffer is full misses the event, and
// failures never affect fight state.
type Broadcaster struct {
	mu     sync.RWMutex
	subs   map[string]map[uint64]chan TickEvent
	nextID uint64
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[string]map[uint64]chan TickEvent)}
}

// Subscribe registers a spectator for a fight id and returns its id and
// receive channel. The channel is closed on Unsubscribe or DropFight.
func (b *Broadcaster) Subscribe(fightID string) (uint64, <-chan TickEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	ch := make(chan TickEvent, 16)
	if b.subs[fightID] == nil {
		b.subs[fightID] = make(map[uint64]chan TickEvent)
	}
	b.subs[fightID][id] = ch
	return id, ch
}

// Unsubscribe removes one spectator and closes its channel.
func (b *Broadcaster) Unsubscribe(fightID string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	set := b.subs[fightID]
	if set == nil {
		return
	}
	if ch, ok := set[id]; ok {
		close(ch)
		delete(set, id)
	}
	if len(set) == 0 {
		delete(b.subs, fightID)
	}
}

// DropFight closes every subscriber of a fight, typically on teardown.
func (b *Broadcaster) DropFight(fightID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs[fightID] {
		close(ch)
	}
	delete(b.subs, fightID)
}

// Publish pushes an event to every current subscriber of the fight,
// dropping it for any subscriber that cannot keep up.
func (b *Broadcaster) Publish(fightID string, ev TickEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs[fightID] {
		select {
		case ch <- ev:
		default:
		}
	}
}

// SubscriberCount returns the number of active spectators of a fight.
func (b *Broadcaster) SubscriberCount(fightID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[fightID])
}
