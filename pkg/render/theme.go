package render

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// StylesheetAsset is the manifest asset key holding the figure stylesheet.
const StylesheetAsset = "figure.stylesheet"

// ErrUnsafeThemeValue reports a token that cannot be emitted inside a style
// element without changing the surrounding markup or rule.
var ErrUnsafeThemeValue = errors.New("render: unsafe theme value")

var cssVarName = regexp.MustCompile(`^--[A-Za-z0-9_-]+$`)

// ThemeConfig is the resolved view of a go-theme selection that renderers use
// when producing page output.
type ThemeConfig struct {
	Name       string
	Variant    string
	Tokens     map[string]string
	CSSVars    map[string]string
	Stylesheet string
}

// ThemeConfigFromSelection resolves tokens, CSS variables and the figure
// stylesheet through the selection. A nil selection or manifest yields nil.
func ThemeConfigFromSelection(selection *theme.Selection) (*ThemeConfig, error) {
	if selection == nil || selection.Manifest == nil {
		return nil, nil
	}

	cfg := &ThemeConfig{
		Name:    selection.Manifest.Name,
		Variant: selection.Variant,
		Tokens:  selection.Tokens(),
		CSSVars: selection.CSSVariables(""),
	}
	if cfg.Name == "" {
		cfg.Name = selection.Theme
	}
	cfg.Stylesheet, _ = selection.Asset(StylesheetAsset)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every CSS variable can be written into a style
// element verbatim.
func (c *ThemeConfig) Validate() error {
	if c == nil {
		return nil
	}
	for name, value := range c.CSSVars {
		if !cssVarName.MatchString(name) {
			return fmt.Errorf("%w: variable name %q", ErrUnsafeThemeValue, name)
		}
		if err := checkCSSValue(name, value); err != nil {
			return err
		}
	}
	return nil
}

// CSSRule renders the CSS variables as a single :root rule with names in
// sorted order. It returns "" when there are no variables.
func (c *ThemeConfig) CSSRule() string {
	if c == nil || len(c.CSSVars) == 0 {
		return ""
	}
	names := make([]string, 0, len(c.CSSVars))
	for name := range c.CSSVars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root { ")
	for _, name := range names {
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(c.CSSVars[name])
		b.WriteString("; ")
	}
	b.WriteString("}")
	return b.String()
}

// ValidateManifest runs the go-theme manifest checks and rejects tokens, in
// the base set or any variant, that ThemeConfig.Validate would refuse.
func ValidateManifest(manifest *theme.Manifest) error {
	if manifest == nil {
		return errors.New("render: theme manifest is required")
	}
	if err := manifest.Validate(); err != nil {
		return fmt.Errorf("render: theme %q: %w", manifest.Name, err)
	}
	if err := checkTokens(manifest.Tokens); err != nil {
		return fmt.Errorf("render: theme %q: %w", manifest.Name, err)
	}
	for name, variant := range manifest.Variants {
		if err := checkTokens(variant.Tokens); err != nil {
			return fmt.Errorf("render: theme %q variant %q: %w", manifest.Name, name, err)
		}
	}
	return nil
}

func checkTokens(tokens map[string]string) error {
	for key, value := range tokens {
		if !cssVarName.MatchString("--" + key) {
			return fmt.Errorf("%w: token name %q", ErrUnsafeThemeValue, key)
		}
		if err := checkCSSValue(key, value); err != nil {
			return err
		}
	}
	return nil
}

func checkCSSValue(name, value string) error {
	if strings.ContainsAny(value, "<>{}") {
		return fmt.Errorf("%w: %s: %q", ErrUnsafeThemeValue, name, value)
	}
	return nil
}
