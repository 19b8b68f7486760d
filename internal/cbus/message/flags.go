package message

// NodeFlags is the PNN status bit mask.
type NodeFlags uint8

const (
	FlagConsumer    NodeFlags = 1 << 0
	FlagProducer    NodeFlags = 1 << 1
	FlagFLiM        NodeFlags = 1 << 2
	FlagBootloader  NodeFlags = 1 << 3
	FlagAutoConsume NodeFlags = 1 << 4
	FlagLearnMode   NodeFlags = 1 << 5
)

// CommandStationFlags is the STAT status bit mask.
type CommandStationFlags uint8

const (
	FlagHWError       CommandStationFlags = 1 << 0
	FlagTrackError    CommandStationFlags = 1 << 1
	FlagTrackPower    CommandStationFlags = 1 << 2
	FlagBusPower      CommandStationFlags = 1 << 3
	FlagEmergencyStop CommandStationFlags = 1 << 4
	FlagResetDone     CommandStationFlags = 1 << 5
	FlagServiceMode   CommandStationFlags = 1 << 6
)
