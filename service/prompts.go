package service

import "fmt"

const simplifyPromptTemplate = `You are a legal document simplifier. Simplify the following legal document section into easy-to-understand language while preserving its legal essence. Use simple terms and clear explanations.

Document section:
%s`

const chatPromptTemplate = `You are a helpful legal assistant. Answer the following question about the legal document in a clear and concise manner.

Question: %s

Document content:
%s`

// SimplifyPrompt wraps one document chunk in the simplification instruction.
func SimplifyPrompt(chunk string) string {
	return fmt.Sprintf(simplifyPromptTemplate, chunk)
}

// ChatPrompt wraps a follow-up question together with the document it is about.
func ChatPrompt(question, documentContent string) string {
	return fmt.Sprintf(chatPromptTemplate, question, documentContent)
}
