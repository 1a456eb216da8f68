package entity

import "github.com/samdwyer/simplerpg/internal/gamedata"

// Item is something the player can pick up.
type Item struct {
	name    string
	message string
}

// NewItem creates an item.
func NewItem(name, message string) *Item {
	return &Item{name: name, message: message}
}

// NewItemFromDef creates an item from a data-driven definition.
func NewItemFromDef(def *gamedata.ItemDef) *Item {
	return NewItem(def.Name, def.Message)
}

// Name returns the item's name.
func (i *Item) Name() string { return i.name }

// Message returns the text shown when the item is picked up.
func (i *Item) Message() string { return i.message }
