package chess

// Tag names written by this module.
const (
	EventTag  = "Event"
	SiteTag   = "Site"
	DateTag   = "Date"
	RoundTag  = "Round"
	WhiteTag  = "White"
	BlackTag  = "Black"
	ResultTag = "Result"
	SetupTag  = "SetUp"
	FENTag    = "FEN"

	PlyCountTag = "PlyCount"
	HashCodeTag = "HashCode"
)

// Result markers.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	Draw       = "1/2-1/2"
	Unfinished = "*"
)

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	EventTag,
	SiteTag,
	DateTag,
	RoundTag,
	WhiteTag,
	BlackTag,
	ResultTag,
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}
