// Package emotion maps free text to a discrete emotion label by substring
// keyword matching, and maps labels to canned supportive messages. Both
// lookups are pure and total.
package emotion

import "strings"

// Label is a discrete emotion category produced by Classify.
type Label string

const (
	LabelHappy    Label = "happy"
	LabelSad      Label = "sad"
	LabelAngry    Label = "angry"
	LabelAnxious  Label = "anxious"
	LabelStressed Label = "stressed"
	LabelLonely   Label = "lonely"
	LabelTired    Label = "tired"
	LabelNeutral  Label = "neutral"
)

// keywordTable is an ordered list, not a map: when text matches keywords for
// more than one label, the earliest entry wins. That ordering is the
// tie-break policy and must stay stable.
var keywordTable = []struct {
	label    Label
	keywords []string
}{
	{LabelHappy, []string{"happy", "joy", "glad", "great", "excited", "grateful", "wonderful", "amazing"}},
	{LabelSad, []string{"sad", "down", "depress", "cry", "unhappy", "miserable", "hopeless", "grief"}},
	{LabelAngry, []string{"angry", "mad", "furious", "annoyed", "hate", "rage", "frustrat"}},
	{LabelAnxious, []string{"anxious", "anxiety", "worried", "nervous", "afraid", "scared", "panic", "fear"}},
	{LabelStressed, []string{"stress", "overwhelm", "pressure", "burnout", "burned out", "too much"}},
	{LabelLonely, []string{"lonely", "alone", "isolated", "no one", "nobody"}},
	{LabelTired, []string{"tired", "exhausted", "sleep", "fatigue", "drained", "insomnia"}},
}

// Classify returns the first label in table order whose keyword set matches
// the lower-cased text, or LabelNeutral when nothing matches or the text is
// empty. Deterministic: same input, same output.
func Classify(text string) Label {
	if text == "" {
		return LabelNeutral
	}

	lowered := strings.ToLower(text)
	for _, entry := range keywordTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lowered, kw) {
				return entry.label
			}
		}
	}
	return LabelNeutral
}
