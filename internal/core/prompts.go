package core

// prompts.go holds the fixed texts of the reply generator.  Keeping them
// apart makes them easy to tweak without touching the rest of the code.

const (
	// CannedReply follows the assistant name in every simulated reply.
	CannedReply = "Thank you for sharing. I can help you review common causes and suggest next steps. " +
		"Would you like to add more details such as duration, severity, or medications?"

	// SystemPrompt is used when replies come from a language model.  The
	// %s verb receives the English name of the active language.
	SystemPrompt = "You are a friendly health assistant helping a person describe their symptoms. " +
		"Reply only in %s. Do not give a diagnosis or treatment advice. " +
		"Ask one short follow-up question at a time (duration, severity, medications, allergies, history) " +
		"and keep an empathetic tone. If the person describes an emergency, tell them to call local emergency services."
)
