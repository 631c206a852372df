package assistant

// Greeting opens every conversation.
const Greeting = "Hi there! I'm your reading assistant. I can help simplify text, correct grammar, or convert Hindi transliterated text. How can I help you today?"

// FallbackResponse is returned when no rule matches.
const FallbackResponse = "I'm here to assist you with reading and communication!\n\n" +
	"I can:\n" +
	"• Help simplify complex text\n" +
	"• Correct grammar and spelling\n" +
	"• Transliterate between Hindi and English\n" +
	"• Suggest responses for easier communication\n\n" +
	"What would you like help with today?"

// DefaultRules returns the built-in rules in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:  "transliteration",
			Match: Keywords("translate", "hindi", "kya", "hai", "transliterate"),
			Response: "It looks like you want to transliterate text!\n\n" +
				"I can convert Hindi transliterated text like 'Kya hal hai' to English or proper Hindi.\n\n" +
				"You can use the transliterate operation. Would you like me to help you with that?",
		},
		{
			Name:  "grammar",
			Match: Keywords("grammar", "correct", "fix", "spelling"),
			Response: "I can help with grammar and spelling corrections!\n\n" +
				"The correct operation identifies and fixes common errors.\n\n" +
				"Would you like me to check some text for you? Just paste it and I'll help you improve it.",
		},
		{
			Name:  "simplify",
			Match: Keywords("explain", "simplify", "what is", "how to"),
			Response: "I'd be happy to simplify that for you!\n\n" +
				"Sometimes complex language can be difficult. Let me break this down:\n\n" +
				"This concept means taking something complicated and explaining it in simpler terms, using everyday language and examples that are easier to understand.",
		},
		{
			Name:  "reading-difficulty",
			Match: Keywords("dyslexia", "reading difficulty", "hard to read"),
			Response: "Reading difficulties like dyslexia can be challenging.\n\n" +
				"Some helpful strategies include:\n" +
				"• Using a dyslexia-friendly font such as OpenDyslexic\n" +
				"• Increasing letter spacing\n" +
				"• Listening to the text read aloud\n" +
				"• Breaking down text into smaller chunks\n\n" +
				"Would you like me to help you set up these features?",
		},
		{
			Name:  "reading-help",
			Match: Keywords("read", "text", "help"),
			Response: "If you're having trouble with a text, try using the text reader. " +
				"You can also adjust the font, spacing, and size to make it easier to read.",
		},
		{
			Name:     "thanks",
			Match:    Keywords("thanks", "thank you"),
			Response: "You're welcome! I'm happy I could help. Let me know if you need anything else.",
		},
	}
}
