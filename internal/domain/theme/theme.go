package theme

type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// Parse reads a stored preference. Anything but "dark" is light.
func Parse(v string) Mode {
	if Mode(v) == Dark {
		return Dark
	}
	return Light
}

func (m Mode) Valid() bool { return m == Dark || m == Light }
