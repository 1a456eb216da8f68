package entity

import "github.com/samdwyer/simplerpg/internal/gamedata"

// NPC is a non-player character that has one thing to say.
type NPC struct {
	name    string
	message string
}

// NewNPC creates an NPC.
func NewNPC(name, message string) *NPC {
	return &NPC{name: name, message: message}
}

// NewNPCFromDef creates an NPC from a data-driven definition.
func NewNPCFromDef(def *gamedata.NPCDef) *NPC {
	return NewNPC(def.Name, def.Message)
}

// Name returns the NPC's name.
func (n *NPC) Name() string { return n.name }

// Message returns what the NPC says when talked to.
func (n *NPC) Message() string { return n.message }
