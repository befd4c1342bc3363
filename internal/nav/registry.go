package nav

import (
	"fmt"
	"strings"

	"github.com/growthlab/growthnav/internal/model"
)

// Registry is the immutable, ordered list of navigable sections.
type Registry struct {
	sections []model.SectionDescriptor
	index    map[model.SectionID]int
}

// NewRegistry validates sections and builds a registry from a copy of them.
// It fails with *ConfigurationError when the list is empty, an id is empty or
// duplicated, or a label is blank.
func NewRegistry(sections []model.SectionDescriptor) (*Registry, error) {
	if len(sections) == 0 {
		return nil, &ConfigurationError{Reason: "no sections defined"}
	}

	r := &Registry{
		sections: make([]model.SectionDescriptor, len(sections)),
		index:    make(map[model.SectionID]int, len(sections)),
	}
	copy(r.sections, sections)

	for i, s := range r.sections {
		if s.ID == "" {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("section %d has an empty id", i)}
		}
		if strings.TrimSpace(s.Label) == "" {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("section %q has an empty label", string(s.ID))}
		}
		if prev, dup := r.index[s.ID]; dup {
			return nil, &ConfigurationError{
				Reason: fmt.Sprintf("duplicate section id %q at positions %d and %d", string(s.ID), prev, i),
			}
		}
		r.index[s.ID] = i
	}

	return r, nil
}

// MustRegistry is NewRegistry for static section lists; it panics on error.
func MustRegistry(sections []model.SectionDescriptor) *Registry {
	r, err := NewRegistry(sections)
	if err != nil {
		panic(err)
	}
	return r
}

// Sections returns a copy of the descriptors in display order.
func (r *Registry) Sections() []model.SectionDescriptor {
	out := make([]model.SectionDescriptor, len(r.sections))
	copy(out, r.sections)
	return out
}

func (r *Registry) Len() int { return len(r.sections) }

// At returns the descriptor at display position i.
func (r *Registry) At(i int) model.SectionDescriptor { return r.sections[i] }

// First returns the first section in display order.
func (r *Registry) First() model.SectionDescriptor { return r.sections[0] }

func (r *Registry) Contains(id model.SectionID) bool {
	_, ok := r.index[id]
	return ok
}

func (r *Registry) Lookup(id model.SectionID) (model.SectionDescriptor, bool) {
	i, ok := r.index[id]
	if !ok {
		return model.SectionDescriptor{}, false
	}
	return r.sections[i], true
}

// Index returns the display position of id, or -1 when it is unknown.
func (r *Registry) Index(id model.SectionID) int {
	if i, ok := r.index[id]; ok {
		return i
	}
	return -1
}
