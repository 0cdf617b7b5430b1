package orderbook

import "github.com/Pakkuu/Order-Book/domain"

// OrderIndex is the sole owner of every live order, keyed by id. A
// *domain.Order pointer held in this map is already a stable handle for as
// long as the map holds it, so no separate arena or generational index is
// needed to satisfy the ownership model.
type OrderIndex struct {
	orders map[uint64]*domain.Order
}

func NewOrderIndex() *OrderIndex {
	return &OrderIndex{orders: make(map[uint64]*domain.Order)}
}

func (idx *OrderIndex) Insert(o *domain.Order) {
	idx.orders[o.ID] = o
}

func (idx *OrderIndex) Get(id uint64) (*domain.Order, bool) {
	o, ok := idx.orders[id]
	return o, ok
}

func (idx *OrderIndex) Delete(id uint64) {
	delete(idx.orders, id)
}

func (idx *OrderIndex) Len() int {
	return len(idx.orders)
}
