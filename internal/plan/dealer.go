package plan

import (
	"queryable-projector/internal/analyze"
	"queryable-projector/internal/mapping"
)

// Dealer hands out the plans of a plan tree, one per type pair.
type Dealer struct {
	needs []*TypePlan
	done  map[mapping.TypePair]struct{}
}

// Needs queues p unless its type pair was already handed out.
func (d *Dealer) Needs(p *TypePlan) {
	if p == nil {
		return
	}

	if _, exists := d.done[mapping.PairOf(p.Source, p.Target)]; !exists {
		d.needs = append(d.needs, p)
	}
}

// NextNeeds returns the next plan with a type pair not handed out yet and queues its nested plans.
func (d *Dealer) NextNeeds() (*TypePlan, bool) {
	for len(d.needs) > 0 {
		p := d.needs[0]
		d.needs = d.needs[1:]

		pair := mapping.PairOf(p.Source, p.Target)
		if _, exists := d.done[pair]; exists {
			continue
		}

		if d.done == nil {
			d.done = make(map[mapping.TypePair]struct{})
		}

		d.done[pair] = struct{}{}

		for _, b := range p.Bindings {
			d.Needs(b.Nested)
		}

		return p, true
	}

	return nil, false
}

// Pairs returns the type pairs of the plan tree in breadth first order.
func Pairs(p *TypePlan) []mapping.TypePair {
	var (
		d     Dealer
		pairs []mapping.TypePair
	)

	d.Needs(p)

	for next, ok := d.NextNeeds(); ok; next, ok = d.NextNeeds() {
		pairs = append(pairs, mapping.PairOf(next.Source, next.Target))
	}

	return pairs
}

// Skeleton returns a mapping file pinning every binding of the plan tree as an
// explicit-only rule, a starting point for hand-tuned rules.
func Skeleton(p *TypePlan) *mapping.MappingFile {
	mf := &mapping.MappingFile{Version: "1", TypeMappings: []mapping.TypeMapping{}}

	var d Dealer

	d.Needs(p)

	for next, ok := d.NextNeeds(); ok; next, ok = d.NextNeeds() {
		fields := make(map[string]string, len(next.Bindings))
		for _, b := range next.Bindings {
			fields[b.Target.Name] = b.Source.Name
		}

		mf.TypeMappings = append(mf.TypeMappings, mapping.TypeMapping{
			Source:       analyze.IDOf(next.Source).String(),
			Target:       analyze.IDOf(next.Target).String(),
			ExplicitOnly: true,
			Fields:       fields,
		})
	}

	return mf
}
