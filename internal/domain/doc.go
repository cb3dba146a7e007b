// Package domain models city suggestions and classified weather snapshots.
//
// # Data Source
//
// Both lookups are served by OpenWeatherMap. City suggestions come from the
// Geocoding API (geo/1.0/direct), queried by free-text prefix with a result
// limit; current conditions come from the Current Weather API (data/2.5/weather),
// queried by exact city name with metric units. The provider ranks geocoding
// results by relevance; that order is trusted and preserved.
//
// # Provider Conventions
//
// Weather responses carry a "cod" status field that is a JSON number (200) on
// success and a quoted string ("404") on errors. The condition description is
// free text such as "light rain" or "broken clouds"; it is normalized to a
// lower-cased, trimmed descriptor key before classification. Icon codes are
// short identifiers like "01d" that the rendering layer expands to image URLs.
//
// Any of the numeric fields (temperature, humidity, wind speed) may be absent
// from a payload. Missing fields resolve to documented defaults rather than
// errors so a partial payload still produces a complete, renderable snapshot:
// temperature 0 °C, humidity 0 %, wind 0 m/s, description "clear sky",
// icon "01d".
//
// # Classification
//
// A descriptor key maps to a theme key and a background-media key through a
// closed table; unknown descriptors fall back to the "clear" theme and the
// clear-sky media key. This fallback is the designed default, not an error —
// Classify is total over all strings.
//
// Continuous readings are reduced to coarse bands using fixed thresholds:
//
//	Temperature: >30 °C hot | >20 °C warm | >10 °C cool | else cold
//	Humidity:    <40 % low  | <70 % moderate | else high
//	Wind:        <3 m/s low | <8 m/s moderate | else high
//
// Comparisons are strict, so boundary values tie toward the lower band for
// temperature (30.0 °C is warm, not hot) and toward the higher band for
// humidity and wind (40 % is moderate, 8 m/s is high). Thresholds live on
// [Thresholds] so deployments can tune them without touching the logic.
package domain
