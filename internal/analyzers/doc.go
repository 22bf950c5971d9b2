// Package analyzers selects and combines meeting analyzers.
//
// The AI analyzer runs when an OpenAI key is configured; the keyword
// heuristic serves both as the fallback on AI failure and as the sole
// analyzer when no key is present.
package analyzers
