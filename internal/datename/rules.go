package datename

import "regexp"

// Rule pairs a compiled pattern with the capture group holding the date.
// Rules are evaluated in order by [Extract]; first match wins.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Group   int
}

// Rule names, reported with every extracted token.
const (
	RuleGeneral  = "general"
	RuleWhatsApp = "whatsapp"
)

var (
	// reGeneral: year 2000-2099, month, day, each optionally separated by
	// '-' or '_', then HHMMSS or HH-MM-SS.
	reGeneral = regexp.MustCompile(
		`(20[0-9]{2}[-_]?[0-9]{2}[-_]?[0-9]{2}[-_]?(?:[0-9]{6}|[0-9]{2}[-_][0-9]{2}[-_][0-9]{2}))`)

	// reWhatsApp: "IMG-20220504-WA0049" style exports carry only a date.
	reWhatsApp = regexp.MustCompile(`(20[0-9]{6})-WA`)
)

// Rules is the ordered recognizer table.
var Rules = []Rule{
	{Name: RuleGeneral, Pattern: reGeneral, Group: 1},
	{Name: RuleWhatsApp, Pattern: reWhatsApp, Group: 1},
}
