package dictionary

import (
	"unicode/utf8"
)

// maxSuggestionDistance bounds the candidate search. Distance-1 candidates
// are always preferred over distance-2 ones regardless of frequency,
// mirroring how close typos usually are to the intended word.
const maxSuggestionDistance = 2

// Correction returns the single best-guess correction for a lowercase word.
// A known word is returned unchanged. For an unknown word the closest known
// words are ranked by corpus frequency; ties break lexicographically so the
// result is deterministic. Returns the empty string when nothing within the
// distance limit is known.
func (d *Dictionary) Correction(word string) string {
	if word == "" {
		return ""
	}
	if d.Known(word) {
		return word
	}

	d.cacheMu.RLock()
	if cached, exists := d.cache[word]; exists {
		d.cacheMu.RUnlock()
		return cached
	}
	d.cacheMu.RUnlock()

	suggestion := ""
	for distance := 1; distance <= maxSuggestionDistance; distance++ {
		if best := d.bestAtDistance(word, distance); best != "" {
			suggestion = best
			break
		}
	}

	d.cacheMu.Lock()
	if len(d.cache) < d.maxCacheSize {
		d.cache[word] = suggestion
	}
	d.cacheMu.Unlock()

	return suggestion
}

// bestAtDistance scans the length buckets reachable within the given edit
// distance and returns the highest-frequency known word at exactly that
// distance or less, or the empty string when none qualifies.
func (d *Dictionary) bestAtDistance(word string, distance int) string {
	wordLen := utf8.RuneCountInString(word)

	best := ""
	var bestFreq int64

	for length := wordLen - distance; length <= wordLen+distance; length++ {
		if length < 1 {
			continue
		}
		for _, candidate := range d.lengthBuckets[length] {
			dist := DamerauLevenshteinDistanceWithLimit(word, candidate, distance)
			if dist > distance {
				continue
			}
			freq := d.words[candidate]
			if freq > bestFreq || (freq == bestFreq && best != "" && candidate < best) {
				best = candidate
				bestFreq = freq
			}
		}
	}

	return best
}
