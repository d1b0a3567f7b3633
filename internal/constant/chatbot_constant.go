package constant

// TopicTurnLogged is the in-process pub/sub topic carrying resolved turns to
// the analytics consumer.
const TopicTurnLogged = "chat.turn.logged"

// Source tags reported on the outcome of a resolved turn.
const (
	SourceSmallTalk        = "Small Talk Response"
	SourceUnclearQuery     = "Unclear Query"
	SourceTranslationError = "Translation Error"
	SourceGenerationError  = "Generation Error"
	SourceRAG              = "RAG"
	SourceRAGRegen         = "RAG-Regen"
)

const (
	RAGSystemPrompt = "You are a helpful, professional chatbot for Leanext Consulting. " +
		"Answer clearly and conversationally, based ONLY on the provided CONTEXT. " +
		"If a related landing page exists, provide its link. Be concise and professional. " +
		"Crucially: Your response MUST be in English. It will be translated by a service later."

	CleaningSystemPrompt = "You are a spelling and grammar correction expert. " +
		"Take the user's text, correct all typos, spelling errors, and awkward phrasing. " +
		"Your response MUST contain ONLY the corrected, cleaned, and syntactically perfect query, " +
		"with no explanation or introductory text."

	FinalFallbackMessage = "I've checked our internal knowledge base, but I couldn't find a definitive " +
		"answer to your question right now. Please try rephrasing."

	UnclearQueryResponse = "I'm not entirely sure what you meant. Did you mean one of these?"

	LanguageFailMessage = "Sorry, I encountered an issue with language translation. " +
		"Please try again in English or another supported language."

	// Placeholder context for the rare case where retrieval passes the unclear
	// gate but returns no text.
	EmptyContextFallback = "Use company knowledge"
)

// SmallTalkTrigger pairs a trigger phrase with its canned pivot-language reply.
// Declaration order is the match order.
type SmallTalkTrigger struct {
	Phrase   string
	Response string
}

var SmallTalkTriggers = []SmallTalkTrigger{
	{"how are you", "I'm doing great, thanks for asking! I'm here to help you navigate Leanext's services."},
	{"who are you", "I'm LeanBot, your AI assistant from Leanext Consulting, here to answer questions and guide you through our programs."},
	{"what can you do", "I can answer your questions about Leanext's services, provide information about our training programs, and find relevant links for you!"},
	{"your name", "You can call me LeanBot!"},
	{"tell me a joke", "Sure! Why did the data scientist go broke? Because he lost all his cache!"},
	{"hello", "Hello! It's wonderful to meet you. How can I assist you with Leanext Consulting today?"},
}

var LanguageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"mr": "Marathi",
	"kn": "Kannada",
	"bn": "Bengali",
	"gu": "Gujarati",
}

var SuggestedFAQs = []string{
	"What services does Leanext offer?",
	"How can I apply for a career at Leanext?",
	"What is Leanext's Lean Master training?",
	"Tell me about the software solutions.",
	"Where is Leanext Consulting located?",
	"What are the terms and conditions?",
}
