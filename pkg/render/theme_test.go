package render_test

import (
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-figure/pkg/render"
)

func acmeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":  "#123456",
			"radius": "4px",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme/",
			Files: map[string]string{
				render.StylesheetAsset: "figure.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{"brand": "#654321"},
				Assets: theme.Assets{
					Files: map[string]string{render.StylesheetAsset: "figure.dark.css"},
				},
			},
			"cdn": {
				Assets: theme.Assets{Prefix: "/assets/themes/acme-cdn"},
			},
		},
	}
}

func selectTheme(t *testing.T, name, variant string, manifests ...*theme.Manifest) *theme.Selection {
	t.Helper()

	registry := theme.NewRegistry()
	for _, manifest := range manifests {
		if err := registry.Register(manifest); err != nil {
			t.Fatalf("register manifest: %v", err)
		}
	}
	selection, err := theme.Selector{Registry: registry}.Select(name, variant)
	if err != nil {
		t.Fatalf("select theme: %v", err)
	}
	return selection
}

func TestThemeConfigFromSelection_Base(t *testing.T) {
	cfg, err := render.ThemeConfigFromSelection(selectTheme(t, "acme", "", acmeManifest()))
	if err != nil {
		t.Fatalf("theme config: %v", err)
	}

	want := &render.ThemeConfig{
		Name:       "acme",
		Tokens:     map[string]string{"brand": "#123456", "radius": "4px"},
		CSSVars:    map[string]string{"--brand": "#123456", "--radius": "4px"},
		Stylesheet: "/assets/themes/acme/figure.css",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("theme config mismatch (-want +got):\n%s", diff)
	}
}

func TestThemeConfigFromSelection_VariantOverrides(t *testing.T) {
	cfg, err := render.ThemeConfigFromSelection(selectTheme(t, "acme", "dark", acmeManifest()))
	if err != nil {
		t.Fatalf("theme config: %v", err)
	}

	if cfg.Variant != "dark" {
		t.Fatalf("unexpected variant %q", cfg.Variant)
	}
	if cfg.Tokens["brand"] != "#654321" || cfg.Tokens["radius"] != "4px" {
		t.Fatalf("variant tokens not merged: %+v", cfg.Tokens)
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css vars not derived from merged tokens: %+v", cfg.CSSVars)
	}
	if cfg.Stylesheet != "/assets/themes/acme/figure.dark.css" {
		t.Fatalf("unexpected stylesheet %q", cfg.Stylesheet)
	}
}

func TestThemeConfigFromSelection_VariantPrefixOnlyKeepsBaseAsset(t *testing.T) {
	selection := selectTheme(t, "acme", "cdn", acmeManifest())

	cfg, err := render.ThemeConfigFromSelection(selection)
	if err != nil {
		t.Fatalf("theme config: %v", err)
	}
	want, ok := selection.Asset(render.StylesheetAsset)
	if !ok {
		t.Fatalf("expected stylesheet asset in selection")
	}
	if cfg.Stylesheet != want || want != "/assets/themes/acme/figure.css" {
		t.Fatalf("stylesheet %q does not match selection asset %q", cfg.Stylesheet, want)
	}
}

func TestThemeConfigFromSelection_DoesNotMutateManifest(t *testing.T) {
	manifest := acmeManifest()
	selection := &theme.Selection{Theme: "acme", Variant: "dark", Manifest: manifest}
	if _, err := render.ThemeConfigFromSelection(selection); err != nil {
		t.Fatalf("theme config: %v", err)
	}

	if manifest.Tokens["brand"] != "#123456" {
		t.Fatalf("base tokens mutated: %+v", manifest.Tokens)
	}
	if manifest.Assets.Files[render.StylesheetAsset] != "figure.css" {
		t.Fatalf("base assets mutated: %+v", manifest.Assets.Files)
	}
}

func TestThemeConfigFromSelection_Nil(t *testing.T) {
	if cfg, err := render.ThemeConfigFromSelection(nil); cfg != nil || err != nil {
		t.Fatalf("expected nil config for nil selection, got %+v %v", cfg, err)
	}
	if cfg, err := render.ThemeConfigFromSelection(&theme.Selection{Theme: "x"}); cfg != nil || err != nil {
		t.Fatalf("expected nil config without manifest, got %+v %v", cfg, err)
	}
}

func TestThemeConfigFromSelection_RejectsMarkupInTokens(t *testing.T) {
	manifest := acmeManifest()
	manifest.Tokens["evil"] = "red}</style><script>alert(1)</script>"

	_, err := render.ThemeConfigFromSelection(&theme.Selection{Theme: "acme", Manifest: manifest})
	if !errors.Is(err, render.ErrUnsafeThemeValue) {
		t.Fatalf("expected ErrUnsafeThemeValue, got %v", err)
	}
}

func TestThemeConfig_Validate(t *testing.T) {
	cases := map[string]map[string]string{
		"closing tag":   {"--brand": "red</style>"},
		"rule break":    {"--brand": "red} body {"},
		"bad name":      {"brand": "red"},
		"name with tag": {"--a</style>": "red"},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := &render.ThemeConfig{CSSVars: vars}
			if err := cfg.Validate(); !errors.Is(err, render.ErrUnsafeThemeValue) {
				t.Fatalf("expected ErrUnsafeThemeValue, got %v", err)
			}
		})
	}

	quoted := &render.ThemeConfig{CSSVars: map[string]string{"--font": `"Inter", sans-serif`}}
	if err := quoted.Validate(); err != nil {
		t.Fatalf("quoted font family rejected: %v", err)
	}

	var nilConfig *render.ThemeConfig
	if err := nilConfig.Validate(); err != nil {
		t.Fatalf("nil config: %v", err)
	}
}

func TestThemeConfig_CSSRule(t *testing.T) {
	cfg := &render.ThemeConfig{CSSVars: map[string]string{
		"--radius": "4px",
		"--font":   `"Inter", sans-serif`,
	}}
	want := `:root { --font: "Inter", sans-serif; --radius: 4px; }`
	if got := cfg.CSSRule(); got != want {
		t.Fatalf("css rule mismatch:\nwant %s\ngot  %s", want, got)
	}
	if got := (&render.ThemeConfig{}).CSSRule(); got != "" {
		t.Fatalf("expected empty rule, got %q", got)
	}
}

func TestValidateManifest(t *testing.T) {
	if err := render.ValidateManifest(acmeManifest()); err != nil {
		t.Fatalf("valid manifest rejected: %v", err)
	}
	if err := render.ValidateManifest(nil); err == nil {
		t.Fatalf("expected error for nil manifest")
	}

	missingVersion := acmeManifest()
	missingVersion.Version = ""
	var validation theme.ValidationError
	if err := render.ValidateManifest(missingVersion); !errors.As(err, &validation) {
		t.Fatalf("expected go-theme validation error, got %v", err)
	}

	unsafeVariant := acmeManifest()
	unsafeVariant.Variants["dark"] = theme.Variant{Tokens: map[string]string{"brand": "</style>"}}
	if err := render.ValidateManifest(unsafeVariant); !errors.Is(err, render.ErrUnsafeThemeValue) {
		t.Fatalf("expected ErrUnsafeThemeValue for variant token, got %v", err)
	}

	badKey := acmeManifest()
	badKey.Tokens["a b"] = "red"
	if err := render.ValidateManifest(badKey); !errors.Is(err, render.ErrUnsafeThemeValue) {
		t.Fatalf("expected ErrUnsafeThemeValue for token name, got %v", err)
	}
}
