package mobylette

// Config holds detector configuration loadable from the environment.
type Config struct {
	// FallbackFormat is tried when no mobile view exists; empty disables fallback
	FallbackFormat string `env:"MOBYLETTE_FALLBACK_FORMAT" envDefault:"html"`

	// SkipXHR makes XMLHttpRequest calls bypass mobile detection
	SkipXHR bool `env:"MOBYLETTE_SKIP_XHR" envDefault:"true"`

	// FormatParam names the query parameter carrying an explicit format
	FormatParam string `env:"MOBYLETTE_FORMAT_PARAM" envDefault:"format"`

	// SkipParam names the query parameter that bypasses mobile handling
	SkipParam string `env:"MOBYLETTE_SKIP_PARAM" envDefault:"skip_mobile"`
}

// NewFromConfig creates a Detector from the provided Config. Additional
// options are applied after the config and take precedence.
func NewFromConfig(cfg Config, opts ...Option) *Detector {
	configOpts := []Option{
		WithFallbackFormat(Format(cfg.FallbackFormat)),
		WithSkipXHR(cfg.SkipXHR),
		WithFormatParam(cfg.FormatParam),
		WithSkipParam(cfg.SkipParam),
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
