package engine

import (
	"fmt"
	"strings"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/logger"
)

// MatchConfidence is the fallback tier at which a vehicle reference was
// resolved. Tiers degrade: an explicit id is exact; a registration is the
// least ambiguous free-text anchor; brand+model can be shared by several
// vehicles; the long label is a last-resort containment check.
type MatchConfidence string

const (
	MatchExact        MatchConfidence = "exact"
	MatchRegistration MatchConfidence = "registration"
	MatchName         MatchConfidence = "name"
	MatchLoose        MatchConfidence = "loose"
)

// MatchResult is the outcome of resolving a contract's vehicle reference
// against the roster.
type MatchResult struct {
	Matched    bool            `json:"matched"`
	VehicleID  string          `json:"vehicle_id,omitempty"`
	Confidence MatchConfidence `json:"confidence,omitempty"`
	Reason     string          `json:"reason,omitempty"`
}

// MatchVehicle resolves the most likely vehicle for a contract. First
// success in the fallback chain wins:
//
//  1. explicit VehicleID, returned verbatim without roster verification
//  2. reference contains a vehicle's registration
//  3. reference contains "<brand> <model>"
//  4. reference contains "<brand> <model> <registration>"
//
// An unmatched reference is reported, never guessed: the caller gets a
// reason and the anomaly is logged for operator visibility.
func MatchVehicle(c *domain.Contract, roster []domain.Vehicle) MatchResult {
	if c.VehicleID != "" {
		return MatchResult{Matched: true, VehicleID: c.VehicleID, Confidence: MatchExact}
	}

	ref := normalizeRef(c.VehicleReference)
	if ref == "" {
		return MatchResult{Reason: "contract carries no vehicle reference"}
	}

	for i := range roster {
		v := &roster[i]
		if reg := normalizeRef(v.Registration); reg != "" && strings.Contains(ref, reg) {
			return MatchResult{Matched: true, VehicleID: v.ID, Confidence: MatchRegistration}
		}
	}
	for i := range roster {
		v := &roster[i]
		if name := normalizeRef(v.Brand + " " + v.Model); name != "" && strings.Contains(ref, name) {
			return MatchResult{Matched: true, VehicleID: v.ID, Confidence: MatchName}
		}
	}
	for i := range roster {
		v := &roster[i]
		long := normalizeRef(v.Brand + " " + v.Model + " " + v.Registration)
		if long != "" && strings.Contains(ref, long) {
			return MatchResult{Matched: true, VehicleID: v.ID, Confidence: MatchLoose}
		}
	}

	logger.Warn("vehicle reference matched no roster vehicle",
		"contract_id", c.ID, "reference", c.VehicleReference, "roster_size", len(roster))
	return MatchResult{Reason: fmt.Sprintf("reference %q matched none of %d roster vehicles", c.VehicleReference, len(roster))}
}

// normalizeRef lower-cases and collapses runs of whitespace.
func normalizeRef(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
