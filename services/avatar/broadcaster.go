package avatar

import "sync"

// EventAvatarUpdated names the avatar update event.
const EventAvatarUpdated = "avatarUpdated"

// Update is the payload carried by an avatar update event.
type Update struct {
	ProfileID string `json:"profileId"`
	AvatarURL string `json:"avatarUrl"`
}

type subscriber struct {
	id uint64
	fn func(Update)
}

// Broadcaster is a fire-and-forget observer registry. Publish calls every
// subscriber synchronously, in subscription order, without acknowledgment.
type Broadcaster struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscriber
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe registers fn and returns a function that removes it.
func (b *Broadcaster) Subscribe(fn func(Update)) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			for i, s := range b.subs {
				if s.id == id {
					b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Publish dispatches u to a snapshot of the current subscribers. Subscribers
// may subscribe or unsubscribe from inside their callback.
func (b *Broadcaster) Publish(u Update) {
	b.mu.RLock()
	snapshot := make([]subscriber, len(b.subs))
	copy(snapshot, b.subs)
	b.mu.RUnlock()

	for _, s := range snapshot {
		s.fn(u)
	}
}

// Len returns the number of subscribers.
func (b *Broadcaster) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Updates is the process-wide avatar update broadcaster.
var Updates = NewBroadcaster()

// TriggerAvatarUpdate broadcasts that a profile's avatar changed.
func TriggerAvatarUpdate(profileID, avatarURL string) {
	Updates.Publish(Update{ProfileID: profileID, AvatarURL: avatarURL})
}
