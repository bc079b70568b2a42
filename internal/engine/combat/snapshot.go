package combat

import (
	"github.com/triglav-games/encounter-api/internal/engine/encounter"
	"github.com/triglav-games/encounter-api/internal/entities/threeworlds"
	"github.com/triglav-games/encounter-api/internal/errors"
)

// Snapshot captures the full attempt state: the engine snapshot plus every
// pile and the Effort bookkeeping. Two independent restores from one
// snapshot, driven by identical actions, produce bit-identical snapshots.
type Snapshot struct {
	Engine *encounter.Snapshot

	Hand    []threeworlds.ActionCard
	Discard []threeworlds.ActionCard
	Exhaust []threeworlds.ActionCard
	Burned  []BurnedCard

	Energy         int
	ReservedEnergy int

	EffortBonus     int
	SelectedCardIDs []string
}

// Snapshot returns a deep copy of the simulation and engine state.
func (s *Simulation) Snapshot() *Snapshot {
	return &Snapshot{
		Engine:          s.eng.Snapshot(),
		Hand:            append([]threeworlds.ActionCard(nil), s.hand...),
		Discard:         append([]threeworlds.ActionCard(nil), s.discard...),
		Exhaust:         append([]threeworlds.ActionCard(nil), s.exhaust...),
		Burned:          append([]BurnedCard(nil), s.burned...),
		Energy:          s.energy,
		ReservedEnergy:  s.reservedEnergy,
		EffortBonus:     s.effortBonus,
		SelectedCardIDs: append([]string(nil), s.selectedIDs...),
	}
}

// Restore overwrites the simulation and its engine with the snapshot. The
// simulation must wrap an engine built from the same context the snapshot
// was taken under.
func (s *Simulation) Restore(snap *Snapshot) error {
	if snap == nil {
		return errors.InvalidArgument("snapshot is required")
	}
	if snap.Engine == nil {
		return errors.InvalidArgument("snapshot is missing the engine state")
	}
	if err := s.eng.RestoreSnapshot(snap.Engine); err != nil {
		return err
	}

	s.hand = append([]threeworlds.ActionCard(nil), snap.Hand...)
	s.discard = append([]threeworlds.ActionCard(nil), snap.Discard...)
	s.exhaust = append([]threeworlds.ActionCard(nil), snap.Exhaust...)
	s.burned = append([]BurnedCard(nil), snap.Burned...)
	s.energy = snap.Energy
	s.reservedEnergy = snap.ReservedEnergy
	s.effortBonus = snap.EffortBonus
	s.selectedIDs = append([]string(nil), snap.SelectedCardIDs...)
	return nil
}
