package orderbook

import (
	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"
)

// Ladder is one side's ordered map from price to PriceLevel. Bids order with
// the highest price first; asks order with the lowest price first. The
// current best level is cached so that reading it costs a pointer
// dereference rather than a tree descent; the cache is only invalidated, and
// refreshed from the tree, when the level holding it is removed.
type Ladder struct {
	tree       *rbt.Tree[int64, *PriceLevel]
	front      *PriceLevel
	descending bool
}

// NewLadder builds an empty ladder. descending picks bid ordering (true) or
// ask ordering (false).
func NewLadder(descending bool) *Ladder {
	var cmp func(a, b int64) int
	if descending {
		cmp = func(a, b int64) int {
			switch {
			case a > b:
				return -1
			case a < b:
				return 1
			default:
				return 0
			}
		}
	} else {
		cmp = func(a, b int64) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			default:
				return 0
			}
		}
	}
	return &Ladder{tree: rbt.NewWith[int64, *PriceLevel](cmp), descending: descending}
}

// Get returns the level at price, if any.
func (l *Ladder) Get(price int64) (*PriceLevel, bool) {
	return l.tree.Get(price)
}

// betterPrice reports whether a ranks ahead of b in this ladder's ordering.
func (l *Ladder) betterPrice(a, b int64) bool {
	if l.descending {
		return a > b
	}
	return a < b
}

// GetOrCreate returns the level at price, creating and inserting an empty one
// if it did not already exist.
func (l *Ladder) GetOrCreate(price int64) *PriceLevel {
	if level, found := l.tree.Get(price); found {
		return level
	}
	level := newPriceLevel(price)
	l.tree.Put(price, level)
	if l.front == nil || l.betterPrice(price, l.front.Price) {
		l.front = level
	}
	return level
}

// Remove erases an empty level from the ladder and releases it to its pool.
// Callers must only call this once the level has no resting orders.
func (l *Ladder) Remove(level *PriceLevel) {
	l.tree.Remove(level.Price)
	if l.front == level {
		if node := l.tree.Left(); node != nil {
			l.front = node.Value
		} else {
			l.front = nil
		}
	}
	level.release()
}

// Front returns the best (price-priority) level, or nil if the ladder is empty.
func (l *Ladder) Front() *PriceLevel {
	return l.front
}

// Len is the number of distinct live price levels.
func (l *Ladder) Len() int {
	return l.tree.Size()
}

// Empty reports whether the ladder holds no price levels.
func (l *Ladder) Empty() bool {
	return l.tree.Empty()
}

// Levels returns up to max levels front-to-back, for read-only depth queries.
func (l *Ladder) Levels(max int) []*PriceLevel {
	out := make([]*PriceLevel, 0, max)
	it := l.tree.Iterator()
	for it.Next() && len(out) < max {
		out = append(out, it.Value())
	}
	return out
}
