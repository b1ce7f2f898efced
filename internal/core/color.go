package core

// Color is a palette index stored with each screen cell. The platform layer
// decides what terminal color each index becomes.
type Color uint8

// Palette used by the board and HUD.
const (
	ColorDefault      Color = iota
	ColorRed                // caught player
	ColorBrightRed          // pursuers, game over banner
	ColorBrightGreen        // level clear banner
	ColorBrightYellow       // player
	ColorBrightBlue         // energy
	ColorBrightCyan         // cannon
	ColorBrightWhite        // stats line
	ColorOrange             // debris
	ColorGray               // frame, empty cells, flags
)
