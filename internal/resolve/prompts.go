package resolve

import "fmt"

// ApologyReply substitutes a failed AI completion. It is the only degraded
// terminal of the chain and is deliberately non-empty.
const ApologyReply = "Sorry, I could not process your question right now. Please try again in a few minutes, or consult a doctor directly if it is urgent."

const symptomPromptTemplate = `A person describes the following: "%s". Identify possible conditions, their likely severity, preventive measures, and whether urgent medical consultation is needed. Keep the answer short and practical.`

const generalPromptTemplate = `Answer this health question concisely: "%s". Include preventive tips where relevant, and advise consulting a doctor for a proper diagnosis.`

func symptomPrompt(query string) string {
	return fmt.Sprintf(symptomPromptTemplate, query)
}

func generalPrompt(query string) string {
	return fmt.Sprintf(generalPromptTemplate, query)
}
