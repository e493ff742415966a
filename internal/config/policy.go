package config

import (
	"fmt"
	"slices"

	"github.com/vmunix/teaser/internal/policy"
)

// Policy converts the [search], [reencode] and [encoding] tables into an
// immutable policy store. Encoder parameters keep their file order.
func (c *Config) Policy() (*policy.Policy, error) {
	search := make(policy.SearchPolicy, len(c.Search))
	for key, sc := range c.Search {
		if err := checkLanguageKey(key); err != nil {
			return nil, fmt.Errorf("search.%s: %w", key, err)
		}
		search[key] = policy.SearchParams{
			UseOriginalTitle: sc.UseOriginalTitle,
			Keywords:         sc.Keywords,
		}
	}

	rules := make(policy.ReencodeRules, len(c.Reencode))
	for name, table := range c.Reencode {
		kind, err := policy.ParseStreamKind(name)
		if err != nil {
			return nil, fmt.Errorf("reencode.%s: %w", name, err)
		}
		rules[kind] = table
	}

	params := make(policy.EncodingParams, len(c.Encoding))
	for name, codecs := range c.Encoding {
		kind, err := policy.ParseStreamKind(name)
		if err != nil {
			return nil, fmt.Errorf("encoding.%s: %w", name, err)
		}
		out := make(map[string][]policy.Param, len(codecs))
		for codec, values := range codecs {
			for _, param := range c.orderedParams(name, codec, values) {
				out[codec] = append(out[codec], policy.Param{Name: param, Value: fmt.Sprint(values[param])})
			}
		}
		params[kind] = out
	}

	return policy.New(search, rules, params)
}

// orderedParams returns the parameter names of one encoding table in file
// order. Names without a recorded position follow in sorted order.
func (c *Config) orderedParams(kind, codec string, values map[string]any) []string {
	names := make([]string, 0, len(values))
	placed := make(map[string]bool, len(values))
	for _, name := range c.paramOrder[kind+"."+codec] {
		if _, ok := values[name]; ok && !placed[name] {
			names = append(names, name)
			placed[name] = true
		}
	}

	var rest []string
	for name := range values {
		if !placed[name] {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	return append(names, rest...)
}
