package realtime

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventTypeVoteCast announces a stored vote. EventTypeRefresh is the
// periodic nudge for subscribers that missed one. Neither payload carries
// counts: consumers re-query the tally endpoints on receipt, so the push
// and pull paths cannot disagree.
const (
	EventTypeVoteCast = "vote_cast"
	EventTypeRefresh  = "refresh"
)

type Event struct {
	Type       string     `json:"type"`
	ElectionID uuid.UUID  `json:"election_id"`
	VoteID     *uuid.UUID `json:"vote_id,omitempty"`
	CastAt     *time.Time `json:"cast_at,omitempty"`
}

type Subscriber struct {
	electionID uuid.UUID
	events     chan Event
}

func (s *Subscriber) Events() <-chan Event {
	return s.events
}

func (s *Subscriber) ElectionID() uuid.UUID {
	return s.electionID
}

// Hub fans vote events out to the live subscribers of each election.
type Hub struct {
	mu              sync.RWMutex
	subscribers     map[uuid.UUID]map[*Subscriber]struct{}
	refreshInterval time.Duration
	logger          *zap.SugaredLogger
}

func NewHub(refreshInterval time.Duration, logger *zap.SugaredLogger) *Hub {
	return &Hub{
		subscribers:     make(map[uuid.UUID]map[*Subscriber]struct{}),
		refreshInterval: refreshInterval,
		logger:          logger,
	}
}

func (h *Hub) Subscribe(electionID uuid.UUID) *Subscriber {
	subscriber := &Subscriber{
		electionID: electionID,
		events:     make(chan Event, 16),
	}

	h.mu.Lock()
	room, ok := h.subscribers[electionID]
	if !ok {
		room = make(map[*Subscriber]struct{})
		h.subscribers[electionID] = room
	}
	room[subscriber] = struct{}{}
	h.mu.Unlock()

	return subscriber
}

func (h *Hub) Unsubscribe(subscriber *Subscriber) {
	h.mu.Lock()
	if room, ok := h.subscribers[subscriber.electionID]; ok {
		if _, ok = room[subscriber]; ok {
			delete(room, subscriber)
			close(subscriber.events)

			if len(room) == 0 {
				delete(h.subscribers, subscriber.electionID)
			}
		}
	}
	h.mu.Unlock()
}

func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	for subscriber := range h.subscribers[event.ElectionID] {
		select {
		case subscriber.events <- event:
		default:
			// slow consumer; the next refresh tick catches it up
		}
	}
	h.mu.RUnlock()
}

// Run emits the periodic refresh event to every room until ctx is done.
// This is the pull fallback: a client that missed a vote_cast still
// converges on the next tick.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.broadcastRefresh()
		}
	}
}

func (h *Hub) broadcastRefresh() {
	h.mu.RLock()
	for electionID, room := range h.subscribers {
		event := Event{
			Type:       EventTypeRefresh,
			ElectionID: electionID,
		}

		for subscriber := range room {
			select {
			case subscriber.events <- event:
			default:
			}
		}
	}
	h.mu.RUnlock()
}
