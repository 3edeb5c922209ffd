package ctr

import (
	"sync"
	"time"
)

// Stat is the analytics view of one (dimension, value) counter pair.
type Stat struct {
	Displays uint64  `json:"displays"`
	Clicks   uint64  `json:"clicks"`
	CTR      float64 `json:"ctr"`
}

// Entry is one append-only impression or click log row.
type Entry struct {
	UserID     uint
	ProductID  uint64
	Attributes AttributeSet
	At         time.Time
}

type record struct {
	displays uint64
	clicks   uint64
}

// Ledger tracks live CTR per attribute value. It is the one shared mutable
// structure of the recommender; all access goes through the mutex. Repeated
// impressions double-count on purpose (repeated exposure is repeated display).
type Ledger struct {
	mu          sync.RWMutex
	counters    map[Dimension]map[string]*record
	impressions []Entry
	clicks      []Entry
}

func NewLedger() *Ledger {
	return &Ledger{
		counters: make(map[Dimension]map[string]*record),
	}
}

func (l *Ledger) recordFor(dim Dimension, value string) *record {
	byValue, ok := l.counters[dim]
	if !ok {
		byValue = make(map[string]*record)
		l.counters[dim] = byValue
	}

	rec, ok := byValue[value]
	if !ok {
		rec = &record{}
		byValue[value] = rec
	}

	return rec
}

// RecordImpression appends to the impression log and increments displays for
// every attribute value in the snapshot.
func (l *Ledger) RecordImpression(userID uint, productID uint64, attrs AttributeSet) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.impressions = append(l.impressions, Entry{
		UserID:     userID,
		ProductID:  productID,
		Attributes: attrs,
		At:         time.Now(),
	})

	for dim, value := range attrs {
		l.recordFor(dim, value).displays++
	}

	exposureEventsTotal.WithLabelValues("impression").Inc()
}

// RecordClick appends to the click log and increments clicks for the same
// attribute keys. A click with no matching prior impression is still
// recorded; correlation is the log consumer's problem.
func (l *Ledger) RecordClick(userID uint, productID uint64, attrs AttributeSet) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.clicks = append(l.clicks, Entry{
		UserID:     userID,
		ProductID:  productID,
		Attributes: attrs,
		At:         time.Now(),
	})

	for dim, value := range attrs {
		l.recordFor(dim, value).clicks++
	}

	exposureEventsTotal.WithLabelValues("click").Inc()
}

// CTR returns clicks/displays for one attribute value, 0 when nothing was
// displayed yet, clamped to [0,1].
func (l *Ledger) CTR(dim Dimension, value string) float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	byValue, ok := l.counters[dim]
	if !ok {
		return 0
	}
	rec, ok := byValue[value]
	if !ok || rec.displays == 0 {
		return 0
	}

	ctr := float64(rec.clicks) / float64(rec.displays)
	if ctr > 1 {
		ctr = 1
	}
	return ctr
}

// Summary returns a full analytics snapshot, keyed by dimension name then
// attribute value. Read-only, side-effect free.
func (l *Ledger) Summary() map[string]map[string]Stat {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]map[string]Stat, len(l.counters))
	for dim, byValue := range l.counters {
		values := make(map[string]Stat, len(byValue))
		for value, rec := range byValue {
			ctr := 0.0
			if rec.displays > 0 {
				ctr = float64(rec.clicks) / float64(rec.displays)
				if ctr > 1 {
					ctr = 1
				}
			}
			values[value] = Stat{
				Displays: rec.displays,
				Clicks:   rec.clicks,
				CTR:      ctr,
			}
		}
		out[dim.Key()] = values
	}

	return out
}

// ImpressionCount reports the impression log length.
func (l *Ledger) ImpressionCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.impressions)
}

// ClickCount reports the click log length.
func (l *Ledger) ClickCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.clicks)
}
