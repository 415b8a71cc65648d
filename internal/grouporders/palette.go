package grouporders

// avatarPalette is the fixed set of participant avatar colors. Assignment
// cycles by join position so the same position always gets the same color.
var avatarPalette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFA07A",
	"#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E9", "#F8C471",
}

// colorForPosition maps a 1-based join position onto the palette.
func colorForPosition(position int) string {
	if position < 1 {
		position = 1
	}
	return avatarPalette[(position-1)%len(avatarPalette)]
}
