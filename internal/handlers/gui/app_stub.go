//go:build !ebiten

package gui

// Run reports that the binary was built without GUI support. The
// headless build keeps the CLI usable on machines without a display
// stack; graphical mode needs the 'ebiten' build tag.
func Run(cfg *Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	return ErrGUIUnavailable
}
