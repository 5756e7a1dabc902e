// Package dataset builds a per-cycle lookup of region and condition keyed
// health messages from external government data feeds. The dataset is rebuilt
// in full on every resolution cycle and never cached across calls.
package dataset

import (
	"sort"
	"strings"
)

// PrimaryCondition keys the entries contributed by the per-region case
// counter feed.
const PrimaryCondition = "covid-19"

// Dataset maps canonical region key to condition key to a formatted message.
// Keys are lowercase and trimmed. A missing key means no data, never an
// error.
type Dataset map[string]map[string]string

// Get returns the message for an exact (region, condition) key.
func (d Dataset) Get(region, condition string) (string, bool) {
	conditions, ok := d[normalizeKey(region)]
	if !ok {
		return "", false
	}

	msg, ok := conditions[normalizeKey(condition)]

	return msg, ok
}

// Loose region matching needs enough of a name to be meaningful; anything
// shorter only matches exactly.
const minLooseRegionRunes = 4

// Region returns all condition messages for a region. The free-text name is
// matched loosely: an exact key match is preferred, otherwise the first
// dataset key (in sorted order, for determinism) that contains or is
// contained in the name.
func (d Dataset) Region(name string) (map[string]string, bool) {
	key := normalizeKey(name)
	if key == "" {
		return nil, false
	}

	if conditions, ok := d[key]; ok {
		return conditions, true
	}

	if len([]rune(key)) < minLooseRegionRunes {
		return nil, false
	}

	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		if strings.Contains(k, key) || strings.Contains(key, k) {
			return d[k], true
		}
	}

	return nil, false
}

// Set stores a message, overwriting any existing entry for the same key.
func (d Dataset) Set(region, condition, message string) {
	region = normalizeKey(region)
	condition = normalizeKey(condition)

	if region == "" || condition == "" {
		return
	}

	if d[region] == nil {
		d[region] = make(map[string]string)
	}

	d[region][condition] = message
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
