// Package translator wraps one streamed Gemini call per translation.
//
// A Client holds only resolved configuration (API key, default model, call
// timeout) and is safe for concurrent use. Requests carrying their own API
// key get a throwaway Client from Resolver; the shared Client is never
// mutated.
package translator
