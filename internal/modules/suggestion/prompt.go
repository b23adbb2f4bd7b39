// README: Travel assistant prompt and the templated fallback suggestion.
package suggestion

import (
	"fmt"
	"strconv"
	"strings"
)

// Trip carries everything the suggestion is built from.
type Trip struct {
	Source      string
	Destination string
	Duration    string
	Condition   string
	Temperature float64
}

// FormatTemperature prints t with at least one decimal place: 20 -> "20.0", 18.25 -> "18.25".
func FormatTemperature(t float64) string {
	s := strconv.FormatFloat(t, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Fallback is the deterministic suggestion used when no model answer is available.
func Fallback(t Trip) string {
	return fmt.Sprintf("Traveling from %s to %s will take %s. Weather at destination: %s, %s°C. Dress appropriately and enjoy your ride! 🚕",
		t.Source, t.Destination, t.Duration, t.Condition, FormatTemperature(t.Temperature))
}

// BuildPrompt renders the travel assistant instructions for a trip.
func BuildPrompt(t Trip) string {
	temp := FormatTemperature(t.Temperature)
	return fmt.Sprintf(`I am booking a cab from %[1]s to %[2]s.
The trip will take %[3]s.
The weather at the destination is %[4]s with a temperature of %[5]s°C.

Act as a travel assistant and give SPECIFIC, ACTIONABLE advice.

1. CLOTHING:
   - Below 15°C: wear a SWEATER or JACKET.
   - Below 5°C: wear a WARM COAT or HEAVY JACKET.
   - Above 25°C: wear LIGHT CLOTHING or a T-SHIRT.
   - Weather mentions "rain", "drizzle" or "storm": strongly recommend a RAINCOAT or UMBRELLA.
   - Weather mentions "snow": recommend WARM BOOTS and a HEAVY COAT.

2. ESSENTIAL ITEMS:
   - Rain likely: "Carry a RAINCOAT or UMBRELLA".
   - Cold: "Bring a SWEATER or JACKET".
   - Hot: "Wear light, breathable clothing".

3. One short, friendly tip for the ride.

Response format:
- First line: the weather-specific clothing recommendation (e.g. "Bring a SWEATER - it's %[5]s°C" or "Carry a RAINCOAT - rain expected").
- Second line: an additional tip.
- 2-3 sentences, under 60 words.
- Direct and specific, not generic.
`, t.Source, t.Destination, t.Duration, t.Condition, temp)
}
