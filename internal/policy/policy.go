// Package policy holds the language-dependent search preferences and the codec
// re-encode tables. A Policy is built once at startup and never mutated.
package policy

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the reserved search policy key used when no language-specific entry applies.
const DefaultLanguage = "default"

// CopyCodec is the pass-through target: the stream is kept as-is.
const CopyCodec = "copy"

// StreamKind identifies the media stream a rule applies to.
type StreamKind int

const (
	Video StreamKind = iota
	Audio
)

// Kinds lists every stream kind in probe order.
var Kinds = []StreamKind{Video, Audio}

func (k StreamKind) String() string {
	switch k {
	case Video:
		return "video"
	case Audio:
		return "audio"
	default:
		return fmt.Sprintf("StreamKind(%d)", int(k))
	}
}

// ParseStreamKind converts "video" or "audio" (case-insensitive) to a StreamKind.
func ParseStreamKind(s string) (StreamKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "video":
		return Video, nil
	case "audio":
		return Audio, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStreamKind, s)
	}
}

// SearchParams are the video-search preferences for one language.
type SearchParams struct {
	UseOriginalTitle bool
	Keywords         string
}

// Param is a single encoder parameter passed to the transcode engine.
type Param struct {
	Name  string
	Value string
}

// SearchPolicy maps a language code, or DefaultLanguage, to its search parameters.
type SearchPolicy map[string]SearchParams

// ReencodeRules maps (stream kind, source codec) to a target codec.
type ReencodeRules map[StreamKind]map[string]string

// EncodingParams maps (stream kind, target codec) to encoder parameters in declaration order.
type EncodingParams map[StreamKind]map[string][]Param

// Policy is the immutable policy store.
type Policy struct {
	search  SearchPolicy
	aliases map[string]string // LanguageKey -> search key
	rules   ReencodeRules
	params  EncodingParams
}

// New validates and copies the given tables into a Policy.
func New(search SearchPolicy, rules ReencodeRules, params EncodingParams) (*Policy, error) {
	p := &Policy{
		search:  make(SearchPolicy, len(search)),
		aliases: make(map[string]string, len(search)),
		rules:   make(ReencodeRules),
		params:  make(EncodingParams),
	}

	for lang, sp := range search {
		key := normalizeLanguage(lang)
		if key == "" {
			return nil, fmt.Errorf("search policy: empty language key")
		}
		if key != DefaultLanguage {
			canon := LanguageKey(key)
			if prev, ok := p.aliases[canon]; ok && prev != key {
				return nil, fmt.Errorf("%w: %q and %q", ErrDuplicateLanguage, prev, key)
			}
			p.aliases[canon] = key
		}
		sp.Keywords = strings.TrimSpace(sp.Keywords)
		p.search[key] = sp
	}
	if _, ok := p.search[DefaultLanguage]; !ok {
		return nil, ErrMissingDefault
	}

	for kind, table := range rules {
		if err := checkKind(kind); err != nil {
			return nil, err
		}
		out := make(map[string]string, len(table))
		for source, target := range table {
			source, target = normalizeCodec(source), normalizeCodec(target)
			if source == "" || target == "" {
				return nil, fmt.Errorf("reencode rule %s.%q: %w", kind, source, ErrEmptyCodec)
			}
			out[source] = target
		}
		p.rules[kind] = out
	}

	for kind, table := range params {
		if err := checkKind(kind); err != nil {
			return nil, err
		}
		out := make(map[string][]Param, len(table))
		for codec, list := range table {
			codec = normalizeCodec(codec)
			if codec == "" {
				return nil, fmt.Errorf("encoding params %s: %w", kind, ErrEmptyCodec)
			}
			for _, param := range list {
				if strings.TrimSpace(param.Name) == "" {
					return nil, fmt.Errorf("encoding params %s.%s: empty parameter name", kind, codec)
				}
			}
			out[codec] = slices.Clone(list)
		}
		p.params[kind] = out
	}

	return p, nil
}

// Default returns the search parameters for the default entry.
func (p *Policy) Default() SearchParams {
	return p.search[DefaultLanguage]
}

// Lookup returns the dedicated search parameters for lang, if any. An entry
// whose key is exactly lang wins; otherwise keys are compared by LanguageKey,
// so "fr-CA" finds a "fr" entry. The reserved default key never matches here.
func (p *Policy) Lookup(lang string) (SearchParams, bool) {
	key := normalizeLanguage(lang)
	if key == "" || key == DefaultLanguage {
		return SearchParams{}, false
	}
	if sp, ok := p.search[key]; ok {
		return sp, true
	}
	if stored, ok := p.aliases[LanguageKey(key)]; ok {
		return p.search[stored], true
	}
	return SearchParams{}, false
}

// LanguageKey returns the base language of a code as known to x/text, or the
// lowercased code itself when x/text does not recognize it. Codes that only
// the metadata service uses, such as "cn", are kept as they are.
func LanguageKey(lang string) string {
	key := normalizeLanguage(lang)
	if key == "" || key == DefaultLanguage {
		return key
	}
	if tag, err := language.Parse(key); err == nil {
		if base, conf := tag.Base(); conf != language.No {
			return base.String()
		}
	}
	return key
}

// Languages returns the configured language keys, sorted, default included.
func (p *Policy) Languages() []string {
	return slices.Sorted(maps.Keys(p.search))
}

// Target returns the codec a stream of the given kind and source codec should be
// converted to. Codecs without a rule map to CopyCodec.
func (p *Policy) Target(kind StreamKind, sourceCodec string) string {
	if target, ok := p.rules[kind][normalizeCodec(sourceCodec)]; ok {
		return target
	}
	return CopyCodec
}

// Params returns a copy of the encoder parameters for a target codec.
func (p *Policy) Params(kind StreamKind, targetCodec string) []Param {
	return slices.Clone(p.params[kind][normalizeCodec(targetCodec)])
}

// RuleCount returns the number of re-encode rules for kind.
func (p *Policy) RuleCount(kind StreamKind) int {
	return len(p.rules[kind])
}

func checkKind(kind StreamKind) error {
	if kind != Video && kind != Audio {
		return fmt.Errorf("%w: %s", ErrUnknownStreamKind, kind)
	}
	return nil
}

func normalizeLanguage(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}

func normalizeCodec(codec string) string {
	return strings.ToLower(strings.TrimSpace(codec))
}
