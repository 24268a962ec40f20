package cryptogains

import "fmt"

// JurisdictionCode selects the national tax policy applied to realized gains.
// The set is closed: policies have genuinely different arithmetic and are
// dispatched through an exhaustive switch, not an open registry.
type JurisdictionCode string

const (
	US JurisdictionCode = "US" // United States: short/long-term split at 365 days
	IN JurisdictionCode = "IN" // India: flat 30% on positive gains
	GB JurisdictionCode = "GB" // United Kingdom: FIFO approximation, non-compliant
	CA JurisdictionCode = "CA" // Canada: 50% inclusion rate
	AU JurisdictionCode = "AU" // Australia: 50% CGT discount for >12-month holds
	DE JurisdictionCode = "DE" // Germany: tax-free after 1-year holding
	AE JurisdictionCode = "AE" // United Arab Emirates: no capital-gains tax
)

// Jurisdictions returns all supported jurisdiction codes, in a fixed order.
func Jurisdictions() []JurisdictionCode {
	return []JurisdictionCode{US, IN, GB, CA, AU, DE, AE}
}

// ParseJurisdiction parses a string into a JurisdictionCode.
// An unrecognized code is an error, never silently defaulted.
func ParseJurisdiction(s string) (JurisdictionCode, error) {
	switch JurisdictionCode(s) {
	case US, IN, GB, CA, AU, DE, AE:
		return JurisdictionCode(s), nil
	default:
		return "", fmt.Errorf("unknown jurisdiction code: %q", s)
	}
}

func (c JurisdictionCode) String() string { return string(c) }

// Describe returns a one-line summary of the jurisdiction's taxable-gain rule.
func (c JurisdictionCode) Describe() string {
	switch c {
	case US:
		return "all gains taxable, split into short-term and long-term at 365 days"
	case IN:
		return "all gains taxable, flat 30% on positive net gains"
	case GB:
		return "all gains taxable under a FIFO approximation of share pooling"
	case CA:
		return "50% of net gains included in taxable income"
	case AU:
		return "50% discount on gains held over 12 months, full inclusion otherwise"
	case DE:
		return "gains held one year or less taxable, longer holds exempt"
	case AE:
		return "no capital-gains tax for individuals"
	default:
		return "unknown"
	}
}
