package dom

import "sync"

// Processed is the set of elements a pass already handled on one page.
// Keys are only unique within a page, so a set must not be shared
// between documents.
type Processed struct {
	mutex sync.Mutex
	keys  map[string]struct{}
}

func NewProcessed() *Processed {
	return &Processed{keys: map[string]struct{}{}}
}

func (processed *Processed) Has(element Element) bool {
	processed.mutex.Lock()
	defer processed.mutex.Unlock()

	_, ok := processed.keys[element.Key()]
	return ok
}

func (processed *Processed) Add(element Element) {
	processed.mutex.Lock()
	defer processed.mutex.Unlock()

	processed.keys[element.Key()] = struct{}{}
}

func (processed *Processed) Len() int {
	processed.mutex.Lock()
	defer processed.mutex.Unlock()

	return len(processed.keys)
}
