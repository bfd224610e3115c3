package systems

import (
	"fmt"

	"github.com/automoto/robospike/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ContactFunc runs when a subject starts overlapping a trigger object.
type ContactFunc func(subject, other *donburi.Entry)

// SolidRule makes objects tagged Subject stop against objects tagged Other.
type SolidRule struct {
	Subject string
	Other   string
}

// TriggerRule calls OnContact when objects tagged Subject overlap objects
// tagged Other.
type TriggerRule struct {
	Subject   string
	Other     string
	Group     *components.HazardGroupData
	OnContact ContactFunc
}

type contactKey struct {
	rule    int
	subject *resolv.Object
	other   *resolv.Object
}

// CollisionPolicy keeps what collides apart from what happens on contact.
// Rules are declared during scene setup and only read afterwards.
type CollisionPolicy struct {
	solids   []SolidRule
	triggers []TriggerRule
	active   map[contactKey]struct{}
}

func NewCollisionPolicy() *CollisionPolicy {
	return &CollisionPolicy{active: make(map[contactKey]struct{})}
}

// RegisterSolid declares a blocking pair. The physics step resolves it.
func (p *CollisionPolicy) RegisterSolid(subject, other string) {
	p.solids = append(p.solids, SolidRule{Subject: subject, Other: other})
}

// RegisterHazard declares that touching any member of group calls onContact.
// Hazard members never move and ignore gravity.
func (p *CollisionPolicy) RegisterHazard(subject string, group *components.HazardGroupData, onContact ContactFunc) {
	if group == nil || group.Tag == "" {
		panic(fmt.Sprintf("systems: hazard group for %q needs a tag", subject))
	}
	group.AllowGravity = false
	group.Immovable = true
	p.triggers = append(p.triggers, TriggerRule{
		Subject:   subject,
		Other:     group.Tag,
		Group:     group,
		OnContact: onContact,
	})
}

// SolidRules returns a copy of the blocking pairs.
func (p *CollisionPolicy) SolidRules() []SolidRule {
	return append([]SolidRule(nil), p.solids...)
}

// TriggerRules returns a copy of the triggered pairs.
func (p *CollisionPolicy) TriggerRules() []TriggerRule {
	return append([]TriggerRule(nil), p.triggers...)
}

// SolidTags lists the tags that block objects tagged subject.
func (p *CollisionPolicy) SolidTags(subject string) []string {
	var out []string
	for _, r := range p.solids {
		if r.Subject == subject {
			out = append(out, r.Other)
		}
	}
	return out
}

// SolidTagsFor lists the tags that block obj, across all of its tags.
func (p *CollisionPolicy) SolidTagsFor(obj *resolv.Object) []string {
	var out []string
	for _, r := range p.solids {
		if obj.HasTags(r.Subject) {
			out = append(out, r.Other)
		}
	}
	return out
}

// Dispatch fires the trigger rules that apply to subject. A callback fires
// once when an overlap starts; pairs that separate are forgotten so the next
// contact fires again.
func (p *CollisionPolicy) Dispatch(subject *resolv.Object) {
	for i, rule := range p.triggers {
		if !subject.HasTags(rule.Subject) {
			continue
		}

		touching := overlapsByTag(subject, rule.Other)
		seen := make(map[*resolv.Object]bool, len(touching))
		for _, other := range touching {
			seen[other] = true
			key := contactKey{rule: i, subject: subject, other: other}
			if _, ok := p.active[key]; ok {
				continue
			}
			// An earlier callback this tick may have moved the subject away.
			if !overlaps(subject, other) {
				seen[other] = false
				continue
			}
			p.active[key] = struct{}{}
			if rule.OnContact != nil {
				rule.OnContact(entryOf(subject), entryOf(other))
			}
		}

		for key := range p.active {
			if key.rule == i && key.subject == subject && !seen[key.other] {
				delete(p.active, key)
			}
		}
	}
}

// Touching reports whether subject is inside an overlap that has already fired.
func (p *CollisionPolicy) Touching(subject *resolv.Object) bool {
	for key := range p.active {
		if key.subject == subject {
			return true
		}
	}
	return false
}

func overlapsByTag(subject *resolv.Object, tag string) []*resolv.Object {
	if subject.Space == nil {
		return nil
	}
	check := subject.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var out []*resolv.Object
	for _, other := range check.ObjectsByTags(tag) {
		if other != subject && overlaps(subject, other) {
			out = append(out, other)
		}
	}
	return out
}

// overlaps is a strict AABB test; objects that only share an edge do not count.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

func entryOf(obj *resolv.Object) *donburi.Entry {
	if e, ok := obj.Data.(*donburi.Entry); ok {
		return e
	}
	return nil
}
