// Package realtime turns a collection into a restartable, infinite,
// non-replayable sequence of full-collection snapshots. Each snapshot
// supersedes the prior one; there is no delta or diff contract.
package realtime

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/velora-labs/velora-backend-go/utils"
)

// Snapshot is one full read of a collection.
type Snapshot struct {
	Collection string    `json:"collection"`
	Docs       []bson.M  `json:"docs"`
	At         time.Time `json:"at"`
}

// Subscriber fans a collection's change stream out as snapshots.
type Subscriber struct {
	coll *mongo.Collection

	mu            sync.Mutex
	lastSnapshot  time.Time
	emitted       int64
	lastError     string
	isSubscribing bool
}

func NewSubscriber(coll *mongo.Collection) *Subscriber {
	return &Subscriber{coll: coll}
}

// Health reports whether the stream is live and when it last emitted.
type Health struct {
	IsHealthy    bool      `json:"isHealthy"`
	LastSnapshot time.Time `json:"lastSnapshot"`
	Emitted      int64     `json:"emitted"`
	LastError    string    `json:"lastError,omitempty"`
}

func (s *Subscriber) GetHealth() Health {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Health{
		IsHealthy:    s.isSubscribing,
		LastSnapshot: s.lastSnapshot,
		Emitted:      s.emitted,
		LastError:    s.lastError,
	}
}

// Watch emits an initial snapshot, then a fresh full-collection snapshot
// for every change-stream event. Cancelling the context is the only way
// to unsubscribe; the channel closes when the stream ends. A consumer
// that restarts simply calls Watch again and receives a new initial
// snapshot; nothing is replayed.
func (s *Subscriber) Watch(ctx context.Context) (<-chan Snapshot, error) {
	stream, err := s.coll.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		s.setError(err)
		return nil, err
	}

	out := make(chan Snapshot, 1)

	s.mu.Lock()
	s.isSubscribing = true
	s.mu.Unlock()

	go func() {
		defer close(out)
		defer stream.Close(context.Background())
		defer func() {
			s.mu.Lock()
			s.isSubscribing = false
			s.mu.Unlock()
		}()

		if !s.emit(ctx, out) {
			return
		}

		for stream.Next(ctx) {
			if !s.emit(ctx, out) {
				return
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			s.setError(err)
			log.Printf("change stream on %s ended: %v", s.coll.Name(), err)
		}
	}()

	return out, nil
}

// emit re-queries the whole collection and pushes one snapshot.
func (s *Subscriber) emit(ctx context.Context, out chan<- Snapshot) bool {
	qctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := s.coll.Find(qctx, bson.M{})
	if err != nil {
		s.setError(err)
		log.Printf("snapshot query on %s failed: %v", s.coll.Name(), err)
		return false
	}

	var docs []bson.M
	if err := cursor.All(qctx, &docs); err != nil {
		s.setError(err)
		return false
	}

	snap := Snapshot{Collection: s.coll.Name(), Docs: docs, At: time.Now()}
	select {
	case out <- snap:
	case <-ctx.Done():
		return false
	}

	s.mu.Lock()
	s.lastSnapshot = snap.At
	s.emitted++
	s.lastError = ""
	s.mu.Unlock()
	utils.SnapshotsEmitted.WithLabelValues(s.coll.Name()).Inc()
	return true
}

func (s *Subscriber) setError(err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.mu.Unlock()
}
