package msgbox

// Light returns the default style: light bars with rounded corners.
//
//	╭──────╮
//	│ text │
//	╰──────╯
func Light() Style {
	return Style{
		Horizontal:  "─",
		Vertical:    "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}
}

// Double returns a style with double bars and square corners, in the
// manner of DOS-era text interfaces.
//
//	╔══════╗
//	║ text ║
//	╚══════╝
func Double() Style {
	return Style{
		Horizontal:  "═",
		Vertical:    "║",
		TopLeft:     "╔",
		TopRight:    "╗",
		BottomLeft:  "╚",
		BottomRight: "╝",
	}
}

// Sharp returns the light style with square corners instead of rounded.
//
//	┌──────┐
//	│ text │
//	└──────┘
func Sharp() Style {
	return Style{
		Horizontal:  "─",
		Vertical:    "│",
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomLeft:  "└",
		BottomRight: "┘",
	}
}

// Heavy returns a style drawn with heavy box-drawing glyphs.
//
//	┏━━━━━━┓
//	┃ text ┃
//	┗━━━━━━┛
func Heavy() Style {
	return Style{
		Horizontal:  "━",
		Vertical:    "┃",
		TopLeft:     "┏",
		TopRight:    "┓",
		BottomLeft:  "┗",
		BottomRight: "┛",
	}
}

// ASCII returns a style restricted to 7-bit characters for terminals and
// log sinks without Unicode support.
//
//	+------+
//	| text |
//	+------+
func ASCII() Style {
	return Style{
		Horizontal:  "-",
		Vertical:    "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}
}
