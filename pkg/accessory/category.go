package accessory

// Category is the HAP device category of an accessory. The value hints at
// the icon shown during pairing; it never affects behavior in this model.
type Category uint8

// HAP accessory categories (numeric values per the HAP specification).
const (
	CategoryOther              Category = 1
	CategoryBridge             Category = 2
	CategoryFan                Category = 3
	CategoryGarageDoorOpener   Category = 4
	CategoryLightbulb          Category = 5
	CategoryDoorLock           Category = 6
	CategoryOutlet             Category = 7
	CategorySwitch             Category = 8
	CategoryThermostat         Category = 9
	CategorySensor             Category = 10
	CategoryAlarmSystem        Category = 11
	CategoryDoor               Category = 12
	CategoryWindow             Category = 13
	CategoryWindowCovering     Category = 14
	CategoryProgrammableSwitch Category = 15
	CategoryRangeExtender      Category = 16
	CategoryCamera             Category = 17
	CategoryVideoDoorbell      Category = 18
	CategoryAirPurifier        Category = 19
	CategoryTelevision         Category = 31
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryOther:
		return "OTHER"
	case CategoryBridge:
		return "BRIDGE"
	case CategoryFan:
		return "FAN"
	case CategoryGarageDoorOpener:
		return "GARAGE_DOOR_OPENER"
	case CategoryLightbulb:
		return "LIGHTBULB"
	case CategoryDoorLock:
		return "DOOR_LOCK"
	case CategoryOutlet:
		return "OUTLET"
	case CategorySwitch:
		return "SWITCH"
	case CategoryThermostat:
		return "THERMOSTAT"
	case CategorySensor:
		return "SENSOR"
	case CategoryAlarmSystem:
		return "ALARM_SYSTEM"
	case CategoryDoor:
		return "DOOR"
	case CategoryWindow:
		return "WINDOW"
	case CategoryWindowCovering:
		return "WINDOW_COVERING"
	case CategoryProgrammableSwitch:
		return "PROGRAMMABLE_SWITCH"
	case CategoryRangeExtender:
		return "RANGE_EXTENDER"
	case CategoryCamera:
		return "CAMERA"
	case CategoryVideoDoorbell:
		return "VIDEO_DOORBELL"
	case CategoryAirPurifier:
		return "AIR_PURIFIER"
	case CategoryTelevision:
		return "TELEVISION"
	default:
		return "UNKNOWN"
	}
}
