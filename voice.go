package prism

import (
	"fmt"
	"strings"
)

// VoiceEvent is delivered when a spoken transcript matches a registered
// command phrase.
type VoiceEvent struct {
	Command    string // the registered phrase that matched (normalized)
	Transcript string // the full normalized transcript
}

// VoiceConfig tunes transcript matching.
type VoiceConfig struct {
	// MatchSubstring, when true, matches a command phrase anywhere inside the
	// transcript. Otherwise the whole transcript must equal the phrase.
	MatchSubstring bool
}

// VoiceCommands maps speech transcripts to callbacks. Speech recognition
// itself is a host capability: the host feeds recognized transcripts to
// Dispatch, and this dispatcher handles normalization, matching, and
// callback plumbing.
//
// Phrases and transcripts are normalized before comparison: lowercased, with
// runs of whitespace collapsed to single spaces.
type VoiceCommands struct {
	cfg      VoiceConfig
	handlers map[string]*handlerList[VoiceEvent]
	order    []string // phrase registration order, for deterministic dispatch
	enabled  bool
}

// NewVoiceCommands creates an enabled dispatcher.
func NewVoiceCommands(cfg VoiceConfig) *VoiceCommands {
	return &VoiceCommands{
		cfg:      cfg,
		handlers: make(map[string]*handlerList[VoiceEvent]),
		enabled:  true,
	}
}

// OnCommand registers fn for a spoken phrase. The phrase must contain at
// least one word. Multiple handlers may share a phrase; they fire in
// registration order.
func (v *VoiceCommands) OnCommand(phrase string, fn func(VoiceEvent)) (CallbackHandle, error) {
	normalized := normalizeSpeech(phrase)
	if normalized == "" {
		return CallbackHandle{}, fmt.Errorf("%w: empty voice command phrase", ErrInvalidConfig)
	}
	list, ok := v.handlers[normalized]
	if !ok {
		list = &handlerList[VoiceEvent]{}
		v.handlers[normalized] = list
		v.order = append(v.order, normalized)
	}
	return list.add(fn), nil
}

// Dispatch matches a recognized transcript against all registered phrases
// and fires their handlers. It returns the number of phrases that matched.
// Dispatch is a no-op while the dispatcher is disabled.
func (v *VoiceCommands) Dispatch(transcript string) int {
	if !v.enabled {
		return 0
	}
	normalized := normalizeSpeech(transcript)
	if normalized == "" {
		return 0
	}

	matched := 0
	for _, phrase := range v.order {
		list := v.handlers[phrase]
		if list.len() == 0 {
			continue
		}
		if !v.matches(phrase, normalized) {
			continue
		}
		matched++
		list.fire(VoiceEvent{Command: phrase, Transcript: normalized})
	}
	return matched
}

// SetEnabled toggles dispatching. Registrations are kept while disabled.
func (v *VoiceCommands) SetEnabled(enabled bool) {
	v.enabled = enabled
}

// Enabled reports whether Dispatch currently fires handlers.
func (v *VoiceCommands) Enabled() bool {
	return v.enabled
}

func (v *VoiceCommands) matches(phrase, transcript string) bool {
	if v.cfg.MatchSubstring {
		return strings.Contains(transcript, phrase)
	}
	return transcript == phrase
}

// normalizeSpeech lowercases and collapses whitespace.
func normalizeSpeech(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
