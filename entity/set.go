package entity

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// Set is an ordered set of entities. Iteration visits entities in canonical
// order. Adding an entity which is already contained is a no-op.
//
// Sets are not safe for concurrent use.
type Set struct {
	tree *treeset.Set
}

func compareEntities(a, b interface{}) int {
	return Compare(a.(MessageEntity), b.(MessageEntity))
}

// NewSet creates a set, containing entities.
func NewSet(entities ...MessageEntity) *Set {
	s := &Set{tree: treeset.NewWith(compareEntities)}
	s.Add(entities...)
	return s
}

func (s *Set) Add(entities ...MessageEntity) {
	for _, e := range entities {
		s.tree.Add(e)
	}
}

func (s *Set) Remove(e MessageEntity) {
	s.tree.Remove(e)
}

func (s *Set) Contains(e MessageEntity) bool {
	return s.tree.Contains(e)
}

func (s *Set) Size() int {
	return s.tree.Size()
}

// Entities returns the entities of s in canonical order.
func (s *Set) Entities() []MessageEntity {
	entities := make([]MessageEntity, 0, s.tree.Size())
	it := s.tree.Iterator()
	for it.Next() {
		entities = append(entities, it.Value().(MessageEntity))
	}
	return entities
}

// Each calls f for every entity of s, in canonical order, until f returns
// false.
func (s *Set) Each(f func(MessageEntity) bool) {
	it := s.tree.Iterator()
	for it.Next() {
		if !f(it.Value().(MessageEntity)) {
			return
		}
	}
}

// RemoveIntersecting drops every entity which starts before the end of a
// previously kept entity. entities have to be sorted canonically; the
// result shares its storage with entities.
func RemoveIntersecting(entities []MessageEntity) []MessageEntity {
	kept := entities[:0]
	end := 0
	for _, e := range entities {
		if e.offset >= end {
			kept = append(kept, e)
			end = e.End()
		}
	}
	return kept
}
