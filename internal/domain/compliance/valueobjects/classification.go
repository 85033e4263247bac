package valueobjects

// SlotClassification is the outcome for one required document slot.
type SlotClassification string

const (
	SlotValid    SlotClassification = "valid"
	SlotExpiring SlotClassification = "expiring"
	SlotExpired  SlotClassification = "expired"
	SlotMissing  SlotClassification = "missing"
)

func (s SlotClassification) String() string {
	return string(s)
}

// IsBlocking reports whether the slot prevents payment.
func (s SlotClassification) IsBlocking() bool {
	return s == SlotExpired || s == SlotMissing
}

// ValidityState is the flag stored alongside a document. It is informational
// only; classification is always recomputed from the expiry date.
type ValidityState string

const (
	ValidityValid    ValidityState = "valid"
	ValidityExpiring ValidityState = "expiring"
	ValidityExpired  ValidityState = "expired"
	ValidityUnknown  ValidityState = "unknown"
)

func (v ValidityState) String() string {
	return string(v)
}

func (v ValidityState) IsValid() bool {
	switch v {
	case ValidityValid, ValidityExpiring, ValidityExpired, ValidityUnknown:
		return true
	}
	return false
}

// ParseValidityState maps unrecognised stored values to ValidityUnknown.
func ParseValidityState(s string) ValidityState {
	v := ValidityState(s)
	if !v.IsValid() {
		return ValidityUnknown
	}
	return v
}
