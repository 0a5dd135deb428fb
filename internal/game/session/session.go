// Package session drives one playthrough: the mutable player state layered
// over a validated, read-only World, and the action/requirement evaluation
// engine that mutates it.
package session

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/astokes/fable/internal/game/world"
)

// Session is the mutable per-playthrough state. It is exclusively owned by
// the interaction loop; none of its methods are safe for concurrent use.
// After a successful load the engine never returns errors: action
// application reports plain success or failure, and a lookup of an id the
// World validated is treated as a broken invariant.
type Session struct {
	// ID identifies this playthrough in logs.
	ID uuid.UUID

	world     *world.World
	current   world.Title
	inventory map[world.Identifier]*world.Item
	variants  map[world.Title]world.Identifier
}

// New starts a session in the world's start room with an empty inventory
// and no variant overrides.
func New(w *world.World) *Session {
	return &Session{
		ID:        uuid.New(),
		world:     w,
		current:   w.Meta.StartRoom,
		inventory: make(map[world.Identifier]*world.Item),
		variants:  make(map[world.Title]world.Identifier),
	}
}

// World returns the immutable world this session plays in.
func (s *Session) World() *world.World {
	return s.world
}

// CurrentRoomName returns the name of the room the player is in.
func (s *Session) CurrentRoomName() world.Title {
	return s.current
}

// ActiveVariant returns the active variant override for the named room,
// or "" when the default variant is active.
func (s *Session) ActiveVariant(name world.Title) world.Identifier {
	return s.variants[name]
}

// CurrentRoom returns the current room at its active variant.
func (s *Session) CurrentRoom() *world.Room {
	room := s.world.Rooms[s.current][s.variants[s.current]]
	if room == nil {
		panic(fmt.Sprintf("world invariant broken: no room %q variant %q", s.current, s.variants[s.current]))
	}
	return room
}

// Inventory returns the held items sorted by name.
func (s *Session) Inventory() []*world.Item {
	items := make([]*world.Item, 0, len(s.inventory))
	for _, item := range s.inventory {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

// Holds reports whether the item is in the inventory.
func (s *Session) Holds(item *world.Item) bool {
	_, held := s.inventory[item.Name]
	return held
}

// RequirementMet evaluates one requirement against current state.
func (s *Session) RequirementMet(req world.Requirement) bool {
	switch req.Kind {
	case world.RequireHasItem:
		return s.Holds(req.Item)
	case world.RequireDoesNotHave:
		return !s.Holds(req.Item)
	case world.RequireRoomVariant:
		return s.variants[req.Room.Name] == req.Room.Variant
	default:
		panic(fmt.Sprintf("unknown requirement kind %q", req.Kind))
	}
}

func (s *Session) allMet(reqs []world.Requirement) bool {
	for _, req := range reqs {
		if !s.RequirementMet(req) {
			return false
		}
	}
	return true
}

// LookupDialogue selects the variant of the named dialogue that best fits
// current state: among the non-default variants whose requirements are all
// satisfied, the one satisfying the most requirements wins (ties broken by
// variant id for determinism). A partially-satisfied variant is never
// selected. When no variant qualifies, the default variant is returned,
// which exists by the World invariant.
func (s *Session) LookupDialogue(id world.Identifier) *world.Dialogue {
	group := s.world.Dialogues[id]
	if group == nil {
		panic(fmt.Sprintf("world invariant broken: no dialogue %q", id))
	}

	variants := make([]world.Identifier, 0, len(group))
	for variant := range group {
		if variant != "" {
			variants = append(variants, variant)
		}
	}
	sort.Slice(variants, func(i, j int) bool { return variants[i] < variants[j] })

	var best *world.Dialogue
	bestCount := -1
	for _, variant := range variants {
		d := group[variant]
		if !s.allMet(d.Requires) {
			continue
		}
		if len(d.Requires) > bestCount {
			best = d
			bestCount = len(d.Requires)
		}
	}
	if best != nil {
		return best
	}
	return group[world.Identifier("")]
}

// FilterResponses keeps the responses whose requirements (if any) are all
// satisfied by current state, preserving input order.
func (s *Session) FilterResponses(responses []*world.Response) []*world.Response {
	var visible []*world.Response
	for _, response := range responses {
		if s.allMet(response.Requires) {
			visible = append(visible, response)
		}
	}
	return visible
}

// Do applies an action. The action's precondition is checked first; on
// failure no state changes and false is returned. On success all effects
// are applied and true is returned. "Didn't work" is expected gameplay,
// not an error.
func (s *Session) Do(action *world.Action) bool {
	if !s.preconditionMet(action) {
		return false
	}
	s.apply(action)
	return true
}

// TriggerResponse applies the response's action, if it has one. A response
// without an action trivially succeeds.
func (s *Session) TriggerResponse(response *world.Response) bool {
	if response.Triggers == nil {
		return true
	}
	return s.Do(response.Triggers)
}

// Move follows the current room's exit in the given direction. Returns
// false without mutation when no such exit exists.
func (s *Session) Move(direction world.Identifier) bool {
	target, ok := s.CurrentRoom().Exits[direction]
	if !ok {
		return false
	}
	s.current = target
	return true
}

// preconditionMet evaluates the per-kind gate without mutating state.
// TakeItem's gate is that every listed item is held; ReplaceItem's is that
// the original is held; the remaining kinds gate on their required item
// when one is set. The asymmetry is deliberate: give, take, and move have
// different semantics.
func (s *Session) preconditionMet(action *world.Action) bool {
	switch action.Kind {
	case world.ActionTakeItem:
		for _, item := range action.Items {
			if !s.Holds(item) {
				return false
			}
		}
		return true
	case world.ActionReplaceItem:
		return s.Holds(action.Original)
	case world.ActionChangeRoom, world.ActionGiveItem, world.ActionTeleport, world.ActionSequence:
		return action.Required == nil || s.Holds(action.Required)
	default:
		panic(fmt.Sprintf("unknown action kind %q", action.Kind))
	}
}

// apply performs an action's effects unconditionally. Sequence members are
// applied in order without re-checking their own preconditions; the
// sequence's gate is the only gate.
func (s *Session) apply(action *world.Action) {
	switch action.Kind {
	case world.ActionChangeRoom:
		s.consumeRequired(action)
		if action.Room.Variant == "" {
			delete(s.variants, action.Room.Name)
		} else {
			s.variants[action.Room.Name] = action.Room.Variant
		}

	case world.ActionGiveItem:
		s.consumeRequired(action)
		for _, item := range action.Items {
			s.inventory[item.Name] = item
		}

	case world.ActionTakeItem:
		for _, item := range action.Items {
			delete(s.inventory, item.Name)
		}

	case world.ActionReplaceItem:
		delete(s.inventory, action.Original.Name)
		s.inventory[action.Replacement.Name] = action.Replacement

	case world.ActionTeleport:
		s.consumeRequired(action)
		s.current = action.RoomName
		delete(s.variants, action.RoomName)

	case world.ActionSequence:
		s.consumeRequired(action)
		for _, member := range action.Sequence {
			child := s.world.Actions[member]
			if child == nil {
				panic(fmt.Sprintf("world invariant broken: no action %q", member))
			}
			s.apply(child)
		}
	}
}

func (s *Session) consumeRequired(action *world.Action) {
	if action.Required != nil {
		delete(s.inventory, action.Required.Name)
	}
}
