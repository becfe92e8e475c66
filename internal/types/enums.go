package types

// UAType is the RID aircraft type
type UAType string

const (
	UATypeNotDeclared             UAType = "NotDeclared"
	UATypeAeroplane               UAType = "Aeroplane"
	UATypeHelicopter              UAType = "Helicopter"
	UATypeGyroplane               UAType = "Gyroplane"
	UATypeHybridLift              UAType = "HybridLift"
	UATypeOrnithopter             UAType = "Ornithopter"
	UATypeGlider                  UAType = "Glider"
	UATypeKite                    UAType = "Kite"
	UATypeFreeBalloon             UAType = "FreeBalloon"
	UATypeCaptiveBalloon          UAType = "CaptiveBalloon"
	UATypeAirship                 UAType = "Airship"
	UATypeFreeFallOrParachute     UAType = "FreeFallOrParachute"
	UATypeRocket                  UAType = "Rocket"
	UATypeTetheredPoweredAircraft UAType = "TetheredPoweredAircraft"
	UATypeGroundObstacle          UAType = "GroundObstacle"
	UATypeOther                   UAType = "Other"
)

// RIDOperationalStatus is the RID operational status
type RIDOperationalStatus string

const (
	RIDOperationalStatusUndeclared            RIDOperationalStatus = "Undeclared"
	RIDOperationalStatusGround                RIDOperationalStatus = "Ground"
	RIDOperationalStatusAirborne              RIDOperationalStatus = "Airborne"
	RIDOperationalStatusEmergency             RIDOperationalStatus = "Emergency"
	RIDOperationalStatusRemoteIDSystemFailure RIDOperationalStatus = "RemoteIDSystemFailure"
)

// HorizontalAccuracy of a position
type HorizontalAccuracy string

const (
	HAUnknown  HorizontalAccuracy = "HAUnknown"
	HA10NMPlus HorizontalAccuracy = "HA10NMPlus"
	HA10NM     HorizontalAccuracy = "HA10NM"
	HA4NM      HorizontalAccuracy = "HA4NM"
	HA2NM      HorizontalAccuracy = "HA2NM"
	HA1NM      HorizontalAccuracy = "HA1NM"
	HA05NM     HorizontalAccuracy = "HA05NM"
	HA03NM     HorizontalAccuracy = "HA03NM"
	HA01NM     HorizontalAccuracy = "HA01NM"
	HA005NM    HorizontalAccuracy = "HA005NM"
	HA30m      HorizontalAccuracy = "HA30m"
	HA10m      HorizontalAccuracy = "HA10m"
	HA3m       HorizontalAccuracy = "HA3m"
	HA1m       HorizontalAccuracy = "HA1m"
)

// VerticalAccuracy of a position
type VerticalAccuracy string

const (
	VAUnknown  VerticalAccuracy = "VAUnknown"
	VA150mPlus VerticalAccuracy = "VA150mPlus"
	VA150m     VerticalAccuracy = "VA150m"
	VA45m      VerticalAccuracy = "VA45m"
	VA25m      VerticalAccuracy = "VA25m"
	VA10m      VerticalAccuracy = "VA10m"
	VA3m       VerticalAccuracy = "VA3m"
	VA1m       VerticalAccuracy = "VA1m"
)

// SpeedAccuracy of a reported speed
type SpeedAccuracy string

const (
	SAUnknown   SpeedAccuracy = "SAUnknown"
	SA10mpsPlus SpeedAccuracy = "SA10mpsPlus"
	SA10mps     SpeedAccuracy = "SA10mps"
	SA3mps      SpeedAccuracy = "SA3mps"
	SA1mps      SpeedAccuracy = "SA1mps"
	SA03mps     SpeedAccuracy = "SA03mps"
)

// RIDHeightReference is what a RIDHeight is measured from
type RIDHeightReference string

const (
	RIDHeightReferenceTakeoffLocation RIDHeightReference = "TakeoffLocation"
	RIDHeightReferenceGroundLevel     RIDHeightReference = "GroundLevel"
)
