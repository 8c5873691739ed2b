package rescue

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// State is the sponge state: capacity in [0, Capacity), rate after it.
type State [StateWidth]field.Element

// NewState returns an all-zero state.
func NewState() State {
	var s State
	for i := range s {
		s[i] = field.Zero
	}
	return s
}

// Permute applies the Rescue-Prime permutation in place.
func Permute(s *State) {
	PermuteWith(DefaultParameters(), s)
}

// PermuteWith applies the permutation with an explicit parameter set.
func PermuteWith(p *Parameters, s *State) {
	for round := 0; round < NumRounds; round++ {
		p.forwardRound(s, round)
		p.backwardRound(s, round)
	}
}

// forwardRound: S-box, MDS, constants
func (p *Parameters) forwardRound(s *State, round int) {
	for i := range s {
		s[i] = s[i].ModPow(Alpha)
	}
	p.applyMDS(s)
	for i := range s {
		s[i] = s[i].Add(p.ARK1[round][i])
	}
}

// backwardRound: inverse S-box, MDS, constants
func (p *Parameters) backwardRound(s *State, round int) {
	for i := range s {
		s[i] = s[i].ModPow(InvAlpha)
	}
	p.applyMDS(s)
	for i := range s {
		s[i] = s[i].Add(p.ARK2[round][i])
	}
}

func (p *Parameters) applyMDS(s *State) {
	var out State
	for i := 0; i < StateWidth; i++ {
		acc := field.Zero
		for j := 0; j < StateWidth; j++ {
			acc = acc.Add(p.MDS[i][j].Mul(s[j]))
		}
		out[i] = acc
	}
	*s = out
}
