// Package assist wires an optional AI explain-command feature behind
// the host's F1 hotkey. It is deliberately outside the modal grammar:
// the host intercepts F1 before a key ever reaches the ModalParser, so
// this package has no bearing on vi command parsing and does not
// touch the fixed grammar table. It exists only to give editor
// commands a one-line natural-language explanation on demand — not to
// let the model drive editing, which would reintroduce the user-
// scripting surface the grammar deliberately excludes.
//
// Two backends are supported, chosen by config.AISettings.Provider:
// github.com/anthropics/anthropic-sdk-go and
// github.com/openai/openai-go. A third common choice,
// google/generative-ai-go, is left out — two backends are enough to
// demonstrate the provider-selection pattern without tripling the
// vendored surface for a side feature.
package assist
