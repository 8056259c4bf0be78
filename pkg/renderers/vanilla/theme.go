package vanilla

import theme "github.com/goliatone/go-theme"

// ConfigFromSelection flattens a go-theme selection into the renderer
// configuration: variant tokens override manifest tokens, every token is
// mirrored as a "--name" CSS var, and asset lookups resolve against the
// manifest prefix.
func ConfigFromSelection(sel *theme.Selection) *theme.RendererConfig {
	if sel == nil || sel.Manifest == nil {
		return nil
	}
	manifest := sel.Manifest

	tokens := make(map[string]string, len(manifest.Tokens))
	for name, value := range manifest.Tokens {
		tokens[name] = value
	}

	files := make(map[string]string, len(manifest.Assets.Files))
	for name, file := range manifest.Assets.Files {
		files[name] = file
	}

	if variant, ok := manifest.Variants[sel.Variant]; ok {
		for name, value := range variant.Tokens {
			tokens[name] = value
		}
		for name, file := range variant.Assets.Files {
			files[name] = file
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for name, value := range tokens {
		cssVars["--"+name] = value
	}

	prefix := manifest.Assets.Prefix
	return &theme.RendererConfig{
		Theme:   sel.Theme,
		Variant: sel.Variant,
		Tokens:  tokens,
		CSSVars: cssVars,
		AssetURL: func(name string) string {
			file, ok := files[name]
			if !ok {
				return ""
			}
			if prefix == "" {
				return file
			}
			return prefix + "/" + file
		},
	}
}
