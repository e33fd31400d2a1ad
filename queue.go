package padelelo

import (
	"sync"
)

// Queue holds events waiting for the next settlement pass.
type Queue struct {
	sync.Mutex
	Name    string
	Events  []Event // every access to Events holds the lock
	settler *Settler
}

func NewQueue(name string, settler *Settler) *Queue {
	return &Queue{
		Mutex:   sync.Mutex{},
		Name:    name,
		Events:  make([]Event, 0, 128),
		settler: settler,
	}
}

func (q *Queue) AddEvents(es ...Event) {
	q.Lock()
	defer q.Unlock()

	q.Events = append(q.Events, es...)
}

func (q *Queue) Len() int {
	q.Lock()
	defer q.Unlock()

	return len(q.Events)
}

// GetAndClearEvents takes the pending events and empties the queue.
func (q *Queue) GetAndClearEvents() []Event {
	q.Lock()
	defer q.Unlock()

	res := q.Events
	q.Events = make([]Event, 0, 128)
	return res
}

// Settle settles every event in its own goroutine. Results keep the order of
// events. Events of one pass must not share players.
func (q *Queue) Settle(events []Event) []Result {
	results := make([]Result, len(events))

	wg := sync.WaitGroup{}
	wg.Add(len(events))
	for i, e := range events {
		go func(i int, e Event) {
			defer wg.Done()
			st, err := e.settle(q.settler)
			results[i] = Result{Event: e, Settlement: st, Err: err}
		}(i, e)
	}
	wg.Wait()
	return results
}
