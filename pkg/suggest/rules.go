// Package suggest derives advisory messages from a well's curve coverage
// and zone history. Evaluation is a fixed-order rule list over immutable
// inputs: the same state always yields the same suggestions, nothing is
// persisted.
package suggest

import (
	"fmt"

	"petrolog/entities"
)

type Suggestion struct {
	Type    string `json:"type"` // success|warning|action|info
	Message string `json:"message"`
}

// ExpectedTypes are the curves a standard analysis workflow wants on
// every well.
var ExpectedTypes = []string{"GR", "RESIS", "DENS", "NEUT"}

// ReservoirRatioThreshold is the reservoir fraction above which the zone
// history is called a success.
const ReservoirRatioThreshold = 0.25

type input struct {
	coverage map[string]bool
	zones    []entities.Zone
}

type rule func(input) []Suggestion

// Rule order is part of the contract: missing-curve warnings always come
// before workflow hints, which come before zone-history advice.
var rules = []rule{
	missingCurveRule,
	availableCurveRule,
	noZonesRule,
	reservoirRatioRule,
}

// Evaluate runs every rule in order and concatenates their output.
func Evaluate(coverage []string, zones []entities.Zone) []Suggestion {
	in := input{coverage: map[string]bool{}, zones: zones}
	for _, t := range coverage {
		in.coverage[t] = true
	}

	out := []Suggestion{}
	for _, r := range rules {
		out = append(out, r(in)...)
	}
	return out
}

func missingCurveRule(in input) []Suggestion {
	var out []Suggestion
	for _, t := range ExpectedTypes {
		if !in.coverage[t] {
			info := entities.LogTypes[t]
			out = append(out, Suggestion{
				Type:    "warning",
				Message: fmt.Sprintf("%s (%s) curve missing: import it to complete the standard analysis set.", t, info.Name),
			})
		}
	}
	return out
}

func availableCurveRule(in input) []Suggestion {
	var out []Suggestion
	if in.coverage["GR"] {
		out = append(out, Suggestion{
			Type:    "action",
			Message: "GR curve available: compute the shale volume (Vshale).",
		})
	}
	if in.coverage["DENS"] && in.coverage["NEUT"] {
		out = append(out, Suggestion{
			Type:    "action",
			Message: "DENS and NEUT curves available: build a neutron-density crossplot to identify lithology.",
		})
	}
	if in.coverage["RESIS"] {
		out = append(out, Suggestion{
			Type:    "action",
			Message: "Resistivity curve available: estimate water saturation (Sw) with the Archie relation.",
		})
	}
	return out
}

func noZonesRule(in input) []Suggestion {
	if len(in.zones) > 0 {
		return nil
	}
	return []Suggestion{{
		Type:    "action",
		Message: "No zones analyzed yet: run a calculation on an interval of interest.",
	}}
}

func reservoirRatioRule(in input) []Suggestion {
	if len(in.zones) == 0 {
		return nil
	}
	reservoir := 0
	for _, z := range in.zones {
		if z.ZoneType == "reservoir" {
			reservoir++
		}
	}
	if reservoir == 0 {
		return []Suggestion{{
			Type:    "info",
			Message: "Zones analyzed but none classified as reservoir so far.",
		}}
	}
	if float64(reservoir)/float64(len(in.zones)) > ReservoirRatioThreshold {
		return []Suggestion{{
			Type:    "success",
			Message: fmt.Sprintf("%d reservoir zone(s) identified.", reservoir),
		}}
	}
	return nil
}
