package relayer

import (
	"errors"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/mantlenetworkio/mantle-relayer/op-relayer/crossdomain"
)

var ErrQueueFull = errors.New("pending message queue is full")

type pendingMessage struct {
	msg     crossdomain.L2ToL1Message
	hash    common.Hash
	retries int
}

// Queue holds the messages waiting to be relayed, oldest first.
// Messages are identified by their hash; adding a known message is a no-op.
type Queue struct {
	mu         sync.Mutex
	items      []*pendingMessage
	index      map[common.Hash]*pendingMessage
	maxSize    int
	maxRetries int
}

// NewQueue creates a queue holding at most maxSize messages. A message that
// failed more than maxRetries times is dropped. Zero disables either limit.
func NewQueue(maxSize, maxRetries int) *Queue {
	return &Queue{
		index:      make(map[common.Hash]*pendingMessage),
		maxSize:    maxSize,
		maxRetries: maxRetries,
	}
}

// Add validates and enqueues msg. It reports false when msg is already queued.
func (q *Queue) Add(msg crossdomain.L2ToL1Message) (common.Hash, bool, error) {
	msg.Normalize()
	if err := msg.Validate(); err != nil {
		return common.Hash{}, false, err
	}
	hash := msg.Hash()

	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.index[hash]; ok {
		return hash, false, nil
	}
	if q.maxSize > 0 && len(q.items) >= q.maxSize {
		return hash, false, ErrQueueFull
	}
	p := &pendingMessage{msg: msg, hash: hash}
	q.items = append(q.items, p)
	q.index[hash] = p
	return hash, true, nil
}

// Peek returns up to n of the oldest messages without removing them.
func (q *Queue) Peek(n int) []crossdomain.L2ToL1Message {
	q.mu.Lock()
	defer q.mu.Unlock()
	if n <= 0 || n > len(q.items) {
		n = len(q.items)
	}
	out := make([]crossdomain.L2ToL1Message, n)
	for i := 0; i < n; i++ {
		out[i] = q.items[i].msg
	}
	return out
}

// Remove drops the given messages and returns how many were queued.
func (q *Queue) Remove(hashes ...common.Hash) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	removed := 0
	for _, h := range hashes {
		if _, ok := q.index[h]; ok {
			delete(q.index, h)
			removed++
		}
	}
	if removed > 0 {
		q.compact()
	}
	return removed
}

// Retry records a failed attempt for each message and drops the ones that
// exceeded the retry limit. The dropped hashes are returned.
func (q *Queue) Retry(hashes ...common.Hash) []common.Hash {
	q.mu.Lock()
	defer q.mu.Unlock()
	var dropped []common.Hash
	for _, h := range hashes {
		p, ok := q.index[h]
		if !ok {
			continue
		}
		p.retries++
		if q.maxRetries > 0 && p.retries > q.maxRetries {
			delete(q.index, h)
			dropped = append(dropped, h)
		}
	}
	if len(dropped) > 0 {
		q.compact()
	}
	return dropped
}

// Retries returns the failed attempts of a queued message.
func (q *Queue) Retries(hash common.Hash) (int, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	p, ok := q.index[hash]
	if !ok {
		return 0, false
	}
	return p.retries, true
}

func (q *Queue) Contains(hash common.Hash) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, ok := q.index[hash]
	return ok
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// compact removes items that are no longer indexed. Callers hold mu.
func (q *Queue) compact() {
	kept := q.items[:0]
	for _, p := range q.items {
		if q.index[p.hash] == p {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = nil
	}
	q.items = kept
}
