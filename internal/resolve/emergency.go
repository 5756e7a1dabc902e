package resolve

// hotlines maps canonical region keys to emergency helpline messages.
// DefaultHotline covers an absent or unregistered region.
var hotlines = map[string]string{
	"telangana":   "Telangana health helpline: 104 (24x7). For an ambulance dial 108.",
	"kerala":      "Kerala DISHA helpline: 1056 or 0471-2552056. For an ambulance dial 108.",
	"delhi":       "Delhi health helpline: 011-22307145. For an ambulance dial 102.",
	"maharashtra": "Maharashtra health helpline: 020-26127394. For an ambulance dial 108.",
	"karnataka":   "Karnataka Arogya Sahayavani: 104. For an ambulance dial 108.",
	"tamil nadu":  "Tamil Nadu health helpline: 104. For an ambulance dial 108.",
}

// DefaultHotline is returned when no region-specific entry exists.
const DefaultHotline = "National health helpline: 1075. For an ambulance dial 108; general emergency 112."

// HotlineFor looks up the hotline message for an extracted region. The
// region may be empty.
func HotlineFor(region string) string {
	if msg, ok := hotlines[region]; ok {
		return msg
	}

	return DefaultHotline
}
