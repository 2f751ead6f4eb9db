package weather

import (
	"fmt"
	"strings"

	"noaa-forecast/internal/config"
)

// Canonical icon names
const (
	IconClearDay          = "clear-day"
	IconClearNight        = "clear-night"
	IconPartlyCloudyDay   = "partly-cloudy-day"
	IconPartlyCloudyNight = "partly-cloudy-night"
	IconCloudy            = "cloudy"
	IconFog               = "fog"
	IconRain              = "rain"
	IconSleet             = "sleet"
	IconSnow              = "snow"
	IconThunderstorm      = "thunderstorm"
	IconTornado           = "tornado"
	IconStorm             = "storm"
)

// iconFragment maps an NWS icon short code to a canonical icon. Clear and
// partly cloudy are resolved to their day or night variant.
type iconFragment struct {
	code string
	icon string
}

const (
	iconClear        = "clear"
	iconPartlyCloudy = "partly-cloudy"
)

// Reference: https://api.weather.gov/icons
// Longer codes come before the codes they contain so that tsra_sct is not
// read as sct.
var iconFragments = []iconFragment{
	{"tornado", IconTornado},
	{"hurricane", IconTornado},
	{"tropical_storm", IconStorm},
	{"tsra_sct", IconThunderstorm},
	{"tsra_hi", IconThunderstorm},
	{"tsra", IconThunderstorm},
	{"blizzard", IconSnow},
	{"rain_snow", IconSnow},
	{"snow_sleet", IconSnow},
	{"snow_fzra", IconSnow},
	{"rain_sleet", IconSleet},
	{"rain_fzra", IconRain},
	{"fzra", IconSleet},
	{"sleet", IconSleet},
	{"snow", IconSnow},
	{"rain_showers_hi", IconRain},
	{"rain_showers", IconRain},
	{"rain", IconRain},
	{"wind_skc", iconClear},
	{"wind_few", iconPartlyCloudy},
	{"wind_sct", iconPartlyCloudy},
	{"wind_bkn", IconCloudy},
	{"wind_ovc", IconCloudy},
	{"skc", iconClear},
	{"few", iconPartlyCloudy},
	{"sct", iconPartlyCloudy},
	{"bkn", IconCloudy},
	{"ovc", IconCloudy},
	{"dust", IconFog},
	{"smoke", IconFog},
	{"haze", IconFog},
	{"fog", IconFog},
	{"hot", iconClear},
	{"cold", iconClear},
}

// IconName maps an NWS icon URL or code to a canonical icon name. The first
// matching fragment wins; unknown codes return "".
func IconName(code string) string {
	if code == "" {
		return ""
	}

	night := strings.Contains(code, "night")
	// table order is the priority, so tsra_sct is a thunderstorm and not partly cloudy
	for _, f := range iconFragments {
		if !strings.Contains(code, f.code) {
			continue
		}
		switch f.icon {
		case iconClear:
			if night {
				return IconClearNight
			}
			return IconClearDay
		case iconPartlyCloudy:
			if night {
				return IconPartlyCloudyNight
			}
			return IconPartlyCloudyDay
		default:
			return f.icon
		}
	}

	return ""
}

// IconIDs hands out element ids for animated icons. One allocator is used
// per refresh so ids restart at zero each time.
type IconIDs struct {
	instance string
	next     int
}

func NewIconIDs(instance string) *IconIDs {
	return &IconIDs{instance: instance}
}

// Next returns skycon_<instance>_<n>
func (a *IconIDs) Next() string {
	id := fmt.Sprintf("skycon_%s_%d", a.instance, a.next)
	a.next++
	return id
}

// Count is the number of ids handed out
func (a *IconIDs) Count() int {
	return a.next
}

// IconPath returns the icon file for name in the given set, or "" when
// there is no icon.
func IconPath(iconset, name string) string {
	if name == "" {
		return ""
	}
	set, ok := config.Iconsets[iconset]
	if !ok {
		set = config.Iconsets["1c"]
	}
	return fmt.Sprintf("icons/%s/%s.%s", set.Path, name, set.Format)
}

func inlineIcons(iconset string) InlineIcons {
	return InlineIcons{
		Rain: IconPath(iconset, "i-rain"),
		Snow: IconPath(iconset, "i-snow"),
		Wind: IconPath(iconset, "i-wind"),
	}
}
