// file: internals/features/tournaments/model/classification.go
package model

import "strings"

/* ===================== Enums (Go-side) ===================== */

// Classification is the event tier on a tournament application.
type Classification string

const (
	ClassificationDistrict      Classification = "District"
	ClassificationDivisional    Classification = "Divisional"
	ClassificationState         Classification = "State"
	ClassificationNational      Classification = "National"
	ClassificationInternational Classification = "International"
)

// ApplicationStatus is the review state of a tournament application.
type ApplicationStatus string

const (
	StatusPendingReview    ApplicationStatus = "Pending Review"
	StatusUnderReview      ApplicationStatus = "Under Review"
	StatusApproved         ApplicationStatus = "Approved"
	StatusRejected         ApplicationStatus = "Rejected"
	StatusMoreInfoRequired ApplicationStatus = "More Info Required"
)

// LegacyType is the tier token of the retired tournament schema.
type LegacyType string

const (
	LegacyTypeLocal         LegacyType = "local"
	LegacyTypeDivision      LegacyType = "division"
	LegacyTypeState         LegacyType = "state"
	LegacyTypeSarawak       LegacyType = "sarawak"
	LegacyTypeNational      LegacyType = "national"
	LegacyTypeInternational LegacyType = "international"
)

// SarawakRegion is the one region that splits State events into their own legacy type.
const SarawakRegion = "Sarawak"

// RegionRule narrows a legacy type to the regions it covers.
type RegionRule int

const (
	RegionAny RegionRule = iota
	RegionSarawakOnly
	RegionExceptSarawak
)

/* ===================== Legacy type table ===================== */

type legacyPair struct {
	Type           LegacyType
	Classification Classification
	Region         RegionRule
}

// Order is the order legacy clients list the tiers in.
var legacyTable = [...]legacyPair{
	{LegacyTypeLocal, ClassificationDistrict, RegionAny},
	{LegacyTypeDivision, ClassificationDivisional, RegionAny},
	{LegacyTypeState, ClassificationState, RegionExceptSarawak},
	{LegacyTypeSarawak, ClassificationState, RegionSarawakOnly},
	{LegacyTypeNational, ClassificationNational, RegionAny},
	{LegacyTypeInternational, ClassificationInternational, RegionAny},
}

// LegacyTypeFor derives the legacy token from a classification and region.
// Values outside the enum fall back to local; a State record without a region is "state".
func LegacyTypeFor(c Classification, region string) LegacyType {
	switch c {
	case ClassificationDistrict:
		return LegacyTypeLocal
	case ClassificationDivisional:
		return LegacyTypeDivision
	case ClassificationState:
		if region == SarawakRegion {
			return LegacyTypeSarawak
		}
		return LegacyTypeState
	case ClassificationNational:
		return LegacyTypeNational
	case ClassificationInternational:
		return LegacyTypeInternational
	default:
		return LegacyTypeLocal
	}
}

// ParseLegacyType accepts a token from a legacy caller. Surrounding spaces and case are ignored.
func ParseLegacyType(token string) (LegacyType, bool) {
	t := LegacyType(strings.ToLower(strings.TrimSpace(token)))
	for _, p := range legacyTable {
		if p.Type == t {
			return t, true
		}
	}
	return "", false
}

// Classification returns the modern tier a legacy token reads from.
func (t LegacyType) Classification() Classification {
	for _, p := range legacyTable {
		if p.Type == t {
			return p.Classification
		}
	}
	return ""
}

// RegionRule returns the region restriction attached to the token.
func (t LegacyType) RegionRule() RegionRule {
	for _, p := range legacyTable {
		if p.Type == t {
			return p.Region
		}
	}
	return RegionAny
}

// LegacyTypeInfo describes one row of the legacy type table.
type LegacyTypeInfo struct {
	Type           LegacyType     `json:"type"`
	Classification Classification `json:"classification"`
	Region         string         `json:"region,omitempty"`
}

// LegacyTypes lists the table in legacy order.
func LegacyTypes() []LegacyTypeInfo {
	out := make([]LegacyTypeInfo, 0, len(legacyTable))
	for _, p := range legacyTable {
		info := LegacyTypeInfo{Type: p.Type, Classification: p.Classification}
		switch p.Region {
		case RegionSarawakOnly:
			info.Region = SarawakRegion
		case RegionExceptSarawak:
			info.Region = "!" + SarawakRegion
		}
		out = append(out, info)
	}
	return out
}
