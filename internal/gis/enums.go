package gis

// AircraftType is the backend's classification of an aircraft
type AircraftType int32

const (
	AircraftTypeUndeclared AircraftType = iota
	AircraftTypeAeroplane
	AircraftTypeRotorcraft
	AircraftTypeGyroplane
	AircraftTypeHybridlift
	AircraftTypeOrnithopter
	AircraftTypeGlider
	AircraftTypeKite
	AircraftTypeFreeballoon
	AircraftTypeCaptiveballoon
	AircraftTypeAirship
	AircraftTypeUnpowered
	AircraftTypeRocket
	AircraftTypeTethered
	AircraftTypeGroundobstacle
	AircraftTypeOther

	// AircraftTypeUnknown is returned for values outside the known range.
	AircraftTypeUnknown AircraftType = -1
)

// ParseAircraftType maps a raw wire value onto AircraftType. Values outside
// the known range yield AircraftTypeUnknown and false.
func ParseAircraftType(v int32) (AircraftType, bool) {
	t := AircraftType(v)
	if t < AircraftTypeUndeclared || t > AircraftTypeOther {
		return AircraftTypeUnknown, false
	}
	return t, true
}

// OperationalStatus is the backend's view of what an aircraft is doing
type OperationalStatus int32

const (
	OperationalStatusUndeclared OperationalStatus = iota
	OperationalStatusGround
	OperationalStatusAirborne
	OperationalStatusEmergency
	OperationalStatusRemoteIDSystemFailure

	// OperationalStatusUnknown is returned for values outside the known range.
	OperationalStatusUnknown OperationalStatus = -1
)

// ParseOperationalStatus maps a raw wire value onto OperationalStatus.
// Values outside the known range yield OperationalStatusUnknown and false.
func ParseOperationalStatus(v int32) (OperationalStatus, bool) {
	s := OperationalStatus(v)
	if s < OperationalStatusUndeclared || s > OperationalStatusRemoteIDSystemFailure {
		return OperationalStatusUnknown, false
	}
	return s, true
}
