package pager

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a reusable pager configuration loaded from YAML. Unset fields
// leave the Pager unchanged.
type Preset struct {
	PerPage           *int    `yaml:"per_page"`
	AroundActive      *int    `yaml:"around_active"`
	BeforeSeparator   *int    `yaml:"before_separator"`
	Separator         *string `yaml:"separator"`
	HideSeparator     *bool   `yaml:"hide_separator"`
	PreviousText      *string `yaml:"previous_text"`
	NextText          *string `yaml:"next_text"`
	HidePrevious      *bool   `yaml:"hide_previous"`
	HideNext          *bool   `yaml:"hide_next"`
	ScreenReader      *bool   `yaml:"screen_reader"`
	PagePrefix        *string `yaml:"page_prefix"`
	PageSuffix        *string `yaml:"page_suffix"`
	Pattern           *string `yaml:"pattern"`
	Placeholder       *string `yaml:"placeholder"`
	RetainQueryString *bool   `yaml:"retain_query_string"`
	Fragment          *string `yaml:"fragment"`
	NavigationID      *string `yaml:"navigation_id"`
	Size              string  `yaml:"size"`
	Align             string  `yaml:"align"`
}

var (
	ErrInvalidSize    = errors.New("size must be one of sm, md, lg")
	ErrInvalidAlign   = errors.New("align must be one of left, center, right")
	ErrInvalidPerPage = errors.New("per_page must be at least 1")
	ErrEmptyPattern   = errors.New("pattern must not be empty")
)

var presetSizes = map[string]Size{
	"sm": SizeSmall,
	"md": SizeMedium,
	"lg": SizeLarge,
}

var presetAligns = map[string]Justify{
	"left":   JustifyStart,
	"center": JustifyCenter,
	"right":  JustifyEnd,
}

// LoadPreset reads and validates a YAML preset file.
func LoadPreset(path string) (*Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	return ParsePreset(raw)
}

// ParsePreset decodes and validates a YAML preset.
func ParsePreset(raw []byte) (*Preset, error) {
	var ps Preset
	if err := yaml.Unmarshal(raw, &ps); err != nil {
		return nil, fmt.Errorf("decode preset: %w", err)
	}
	if err := ps.Validate(); err != nil {
		return nil, err
	}
	return &ps, nil
}

// Validate checks the fields whose values are constrained.
func (ps *Preset) Validate() error {
	if ps.Size != "" {
		if _, ok := presetSizes[ps.Size]; !ok {
			return fmt.Errorf("%w: got %q", ErrInvalidSize, ps.Size)
		}
	}
	if ps.Align != "" {
		if _, ok := presetAligns[ps.Align]; !ok {
			return fmt.Errorf("%w: got %q", ErrInvalidAlign, ps.Align)
		}
	}
	if ps.PerPage != nil && *ps.PerPage < 1 {
		return ErrInvalidPerPage
	}
	if ps.Pattern != nil && *ps.Pattern == "" {
		return ErrEmptyPattern
	}
	return nil
}

// Apply returns p with every set field of the preset applied. A nil preset
// returns p unchanged.
func (ps *Preset) Apply(p Pager) Pager {
	if ps == nil {
		return p
	}
	if ps.PerPage != nil {
		p = p.PerPage(*ps.PerPage)
	}
	if ps.AroundActive != nil {
		p = p.AroundActive(*ps.AroundActive)
	}
	if ps.BeforeSeparator != nil {
		p = p.BeforeSeparator(*ps.BeforeSeparator)
	}
	if ps.Separator != nil {
		p = p.Separator(*ps.Separator)
	}
	if ps.HideSeparator != nil {
		p.hideSeparator = *ps.HideSeparator
	}
	if ps.PreviousText != nil {
		p = p.PreviousText(*ps.PreviousText)
	}
	if ps.NextText != nil {
		p = p.NextText(*ps.NextText)
	}
	if ps.HidePrevious != nil {
		p.hidePrevious = *ps.HidePrevious
	}
	if ps.HideNext != nil {
		p.hideNext = *ps.HideNext
	}
	if ps.ScreenReader != nil {
		p = p.ScreenReader(*ps.ScreenReader)
	}
	if ps.PagePrefix != nil {
		p = p.PagePrefix(*ps.PagePrefix)
	}
	if ps.PageSuffix != nil {
		p = p.PageSuffix(*ps.PageSuffix)
	}
	if ps.Pattern != nil || ps.Placeholder != nil {
		pattern, placeholder := p.pattern, ""
		if ps.Pattern != nil {
			pattern = *ps.Pattern
		}
		if ps.Placeholder != nil {
			placeholder = *ps.Placeholder
		}
		p = p.Pattern(pattern, placeholder)
	}
	if ps.RetainQueryString != nil {
		p.retainQuery = *ps.RetainQueryString
	}
	if ps.Fragment != nil {
		p = p.Fragment(*ps.Fragment)
	}
	if ps.NavigationID != nil {
		p = p.NavigationID(*ps.NavigationID)
	}
	if s, ok := presetSizes[ps.Size]; ok {
		p = p.withSize(s)
	}
	if j, ok := presetAligns[ps.Align]; ok {
		p = p.withJustify(j)
	}
	return p
}
