package model

import (
	"fmt"
	"strings"
)

type RoomKind uint8

const (
	Classroom RoomKind = iota
	LabRoom
)

func (kind RoomKind) String() string {
	switch kind {
	case Classroom:
		return "classroom"
	case LabRoom:
		return "lab"
	}
	return fmt.Sprintf("RoomKind(%d)", uint8(kind))
}

func ParseRoomKind(label string) (RoomKind, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "classroom":
		return Classroom, nil
	case "lab":
		return LabRoom, nil
	}
	return 0, fmt.Errorf("%q is not a valid room kind", label)
}

// DefaultRoomCapacity is assumed for rooms registered without one.
const DefaultRoomCapacity = 50

// Room is immutable once registered.
type Room struct {
	Id       string
	Kind     RoomKind
	Capacity int
}

// DuplicateRoomError is returned when a room id is registered twice.
// Registration never overwrites an existing room.
type DuplicateRoomError struct {
	Id string
}

func (err DuplicateRoomError) Error() string {
	return fmt.Sprintf("room %q is already registered", err.Id)
}

// RoomRegistry stores typed rooms and preserves registration order. Slot
// search relies on that order when trying candidate rooms, so it must be
// stable across runs.
type RoomRegistry struct {
	rooms map[string]Room
	order []string
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		rooms: make(map[string]Room),
	}
}

func (registry *RoomRegistry) Register(id string, kind RoomKind, capacity int) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("room id must not be empty")
	}
	if _, ok := registry.rooms[id]; ok {
		return DuplicateRoomError{Id: id}
	}
	registry.rooms[id] = Room{Id: id, Kind: kind, Capacity: capacity}
	registry.order = append(registry.order, id)
	return nil
}

func (registry *RoomRegistry) Get(id string) (Room, bool) {
	room, ok := registry.rooms[id]
	return room, ok
}

func (registry *RoomRegistry) Len() int {
	return len(registry.order)
}

// RoomsOfKind returns the ids of all rooms of the given kind in registration
// order.
func (registry *RoomRegistry) RoomsOfKind(kind RoomKind) []string {
	ids := make([]string, 0, len(registry.order))
	for _, id := range registry.order {
		if registry.rooms[id].Kind == kind {
			ids = append(ids, id)
		}
	}
	return ids
}

// DefaultRegistry reproduces the stock campus room set used when a caller
// supplies no rooms of its own.
func DefaultRegistry() *RoomRegistry {
	registry := NewRoomRegistry()

	classroomIds := []string{
		"102", "103", "104", "105",
		"201", "202", "203", "204", "205", "206",
		"301", "302", "303", "305", "306",
		"NB1", "NB2", "NB3", "NB4",
	}
	for _, id := range classroomIds {
		_ = registry.Register(id, Classroom, DefaultRoomCapacity)
	}

	labIds := []string{"LAB1", "LAB2", "LAB3", "LAB4", "LAB5", "DLDLAB"}
	for _, id := range labIds {
		_ = registry.Register(id, LabRoom, DefaultRoomCapacity)
	}

	return registry
}
