package vanilla

import theme "github.com/goliatone/go-theme"

// Option customises the renderer configuration.
type Option func(*Renderer)

// WithChromeClasses overrides the default chrome class for each supplied
// identifier. Empty override values keep the default.
func WithChromeClasses(overrides map[ChromeClass]string) Option {
	return func(r *Renderer) {
		for key, value := range overrides {
			if value == "" {
				continue
			}
			r.chrome[key] = value
		}
	}
}

// WithTheme supplies a resolved go-theme configuration. Theme tokens become
// CSS custom properties emitted in a style block ahead of the field markup.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(r *Renderer) {
		r.theme = cfg
	}
}

// WithTemplate replaces the built-in markup with a pongo2 template. The
// template receives the field, input state, and composed class list; see
// templateContext for the full variable set.
func WithTemplate(src string) Option {
	return func(r *Renderer) {
		r.templateSrc = src
	}
}
