package broadcast

import "sync"

// Hub fans out JSON payloads to listeners subscribed per topic.
// Services publish a fresh match snapshot or standings view after
// every mutation; handlers stream the payloads out over SSE. Slow
// subscribers drop messages rather than block the publisher.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[chan []byte]struct{}
}

func NewHub() *Hub {
	return &Hub{
		topics: make(map[string]map[chan []byte]struct{}),
	}
}

// MatchTopic is the topic name for one match's snapshot stream.
func MatchTopic(matchID string) string {
	return "match:" + matchID
}

// TournamentTopic is the topic name for one tournament's standings stream.
func TournamentTopic(tournamentID string) string {
	return "tournament:" + tournamentID
}

// Subscribe registers a listener on a topic. The returned cancel
// function removes the subscription and closes the channel.
func (h *Hub) Subscribe(topic string) (<-chan []byte, func()) {
	ch := make(chan []byte, 16)

	h.mu.Lock()
	subs, ok := h.topics[topic]
	if !ok {
		subs = make(map[chan []byte]struct{})
		h.topics[topic] = subs
	}
	subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if subs, ok := h.topics[topic]; ok {
			if _, ok := subs[ch]; ok {
				delete(subs, ch)
				close(ch)
			}
			if len(subs) == 0 {
				delete(h.topics, topic)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers a payload to every current subscriber of a topic.
func (h *Hub) Publish(topic string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.topics[topic] {
		select {
		case ch <- payload:
		default:
			// Subscriber buffer full; drop instead of blocking.
		}
	}
}

// CloseTopic drops every subscriber of a topic, used when the
// underlying match or tournament is deleted.
func (h *Hub) CloseTopic(topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.topics[topic] {
		close(ch)
	}
	delete(h.topics, topic)
}
