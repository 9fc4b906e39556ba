package grid

// palette is the fixed set of display colors teams are hashed into.
// The assignment is cosmetic: two teams may legitimately share a color.
var palette = [10]string{
	"#4F46E5", // indigo
	"#0891B2", // cyan
	"#059669", // emerald
	"#D97706", // amber
	"#DC2626", // red
	"#7C3AED", // violet
	"#DB2777", // pink
	"#2563EB", // blue
	"#65A30D", // lime
	"#EA580C", // orange
}

// TeamColor derives a deterministic display color for a team
// identifier.  The hash is the classic polynomial string hash
// (hash = code + ((hash << 5) - hash) per character) accumulated in 32
// bits and reduced modulo the palette size.  The result is stable
// across processes and never persisted.
func TeamColor(teamID string) string {
	var hash int32
	for _, r := range teamID {
		hash = int32(r) + ((hash << 5) - hash)
	}
	// int32 min has no positive counterpart, so normalize the remainder
	// instead of negating the hash.
	idx := int(hash) % len(palette)
	if idx < 0 {
		idx += len(palette)
	}
	return palette[idx]
}
