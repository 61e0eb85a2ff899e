package config

const (
	WindowWidth  = 800
	WindowHeight = 800

	WindowTitle = "Key Wheel - Esc/Q: Quit"

	// Wheel geometry, as divisors of the outer radius
	RootWidthDivisor  = 5
	DeadSpaceDivisor  = 5
	SpokeInnerDivisor = 5

	// Outer circle inset so a 1px stroke fits the viewport
	EdgeInset = 0.5

	Columns = 12
	Rows    = 7

	// Text
	FontScale   = 0.5
	AccentRow   = 5
	DeadZoneRow = 4
)
