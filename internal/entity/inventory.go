package entity

import "sort"

// Inventory holds the items a character has picked up, keyed by item name.
type Inventory struct {
	items map[string]*Item
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		items: make(map[string]*Item),
	}
}

// Add stores an item. An item with the same name replaces the earlier one.
func (inv *Inventory) Add(item *Item) {
	inv.items[item.Name()] = item
}

// Get returns the item with the given name, or nil if not carried.
func (inv *Inventory) Get(name string) *Item {
	return inv.items[name]
}

// Has reports whether an item with the given name is carried.
func (inv *Inventory) Has(name string) bool {
	_, ok := inv.items[name]
	return ok
}

// Len returns the number of distinct items carried.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Names returns the carried item names in sorted order.
func (inv *Inventory) Names() []string {
	names := make([]string, 0, len(inv.items))
	for name := range inv.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
