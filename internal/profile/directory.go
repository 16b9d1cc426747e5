package profile

import (
	"strings"

	"github.com/samber/lo"
)

// Stats are the headline numbers of the directory.
type Stats struct {
	Builders int
	Projects int
	Skills   int
}

// Filter keeps builders whose name, role, or any skill contains query,
// ignoring case. A blank query keeps everything.
func Filter(builders []Builder, query string) []Builder {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]Builder(nil), builders...)
	}
	return lo.Filter(builders, func(b Builder, _ int) bool {
		if strings.Contains(strings.ToLower(b.Name), q) || strings.Contains(strings.ToLower(b.Role), q) {
			return true
		}
		return lo.SomeBy(b.Skills, func(s string) bool {
			return strings.Contains(strings.ToLower(s), q)
		})
	})
}

// UniqueSkills lists every skill once, in first-seen order.
func UniqueSkills(builders []Builder) []string {
	all := lo.FlatMap(builders, func(b Builder, _ int) []string { return b.Skills })
	return lo.Uniq(all)
}

// ComputeStats counts builders, projects, and distinct skills.
func ComputeStats(builders []Builder) Stats {
	return Stats{
		Builders: len(builders),
		Projects: lo.SumBy(builders, func(b Builder) int { return len(b.Projects) }),
		Skills:   len(UniqueSkills(builders)),
	}
}

// FindByName returns the first builder whose name matches, ignoring case.
func FindByName(builders []Builder, name string) (Builder, bool) {
	want := strings.TrimSpace(name)
	return lo.Find(builders, func(b Builder) bool {
		return strings.EqualFold(b.Name, want)
	})
}

// Directory is the in-memory list of builders. Nothing is persisted.
type Directory struct {
	builders []Builder
}

// NewDirectory returns a directory holding a copy of builders.
func NewDirectory(builders []Builder) *Directory {
	d := &Directory{}
	d.Replace(builders)
	return d
}

// All returns a copy of the current list, newest first.
func (d *Directory) All() []Builder {
	return append([]Builder(nil), d.builders...)
}

// Len returns the number of builders.
func (d *Directory) Len() int {
	return len(d.builders)
}

// Add prepends a builder.
func (d *Directory) Add(b Builder) {
	d.builders = append([]Builder{b.Clone()}, d.builders...)
}

// Replace swaps the whole list, e.g. after the profiles file changed.
func (d *Directory) Replace(builders []Builder) {
	d.builders = lo.Map(builders, func(b Builder, _ int) Builder { return b.Clone() })
}
