package emotion

var responses = map[Label]string{
	LabelHappy:    "That's wonderful to hear! Hold on to what made today good, and maybe jot it down so you can come back to it later.",
	LabelSad:      "I'm sorry you're feeling low. It's okay to sit with sadness for a while; it doesn't have to be fixed right away. Would writing about it in your journal help?",
	LabelAngry:    "That sounds really frustrating. Taking a few slow breaths before reacting can help take the edge off. Your feelings are valid.",
	LabelAnxious:  "Anxiety can be exhausting. Try grounding yourself: name five things you can see, four you can touch, three you can hear. You're safe right now.",
	LabelStressed: "It sounds like a lot is on your plate. Breaking things into one small next step often helps. Be kind to yourself.",
	LabelLonely:   "Feeling alone is hard. Reaching out, even with a small message to someone, can make a difference. The letters board here is also a place where people listen.",
	LabelTired:    "Rest matters as much as anything else you do. If you can, give yourself permission to slow down tonight.",
	LabelNeutral:  "Thank you for sharing. I'm here whenever you want to talk about how you're feeling.",
}

// Respond returns the canned supportive message for a label. Unmapped labels
// fall back to the neutral message — the classifier table and this mapping
// can drift independently, so the fallback stays.
func Respond(label Label) string {
	if msg, ok := responses[label]; ok {
		return msg
	}
	return responses[LabelNeutral]
}
