package model

import "strings"

// team is one league franchise plus the input tokens fans actually type for
// it: abbreviation, city, full name, mascot, and any extra nicknames.
type team struct {
	abbr   string
	loc    string
	mascot string
	nick   []string
}

var teams = []team{
	// NFC
	{abbr: "ARI", loc: "Arizona", mascot: "Cardinals"},
	{abbr: "ATL", loc: "Atlanta", mascot: "Falcons"},
	{abbr: "CAR", loc: "Carolina", mascot: "Panthers"},
	{abbr: "CHI", loc: "Chicago", mascot: "Bears"},
	{abbr: "DAL", loc: "Dallas", mascot: "Cowboys"},
	{abbr: "DET", loc: "Detroit", mascot: "Lions"},
	{abbr: "GB", loc: "Green Bay", mascot: "Packers"},
	{abbr: "LAR", loc: "Los Angeles", mascot: "Rams", nick: []string{"LA Rams"}},
	{abbr: "MIN", loc: "Minnesota", mascot: "Vikings"},
	{abbr: "NO", loc: "New Orleans", mascot: "Saints"},
	{abbr: "NYG", loc: "New York", mascot: "Giants"},
	{abbr: "PHI", loc: "Philadelphia", mascot: "Eagles"},
	{abbr: "SF", loc: "San Francisco", mascot: "49ers", nick: []string{"SFO"}},
	{abbr: "SEA", loc: "Seattle", mascot: "Seahawks"},
	{abbr: "TB", loc: "Tampa Bay", mascot: "Buccaneers", nick: []string{"Bucs"}},
	{abbr: "WAS", loc: "Washington", mascot: "Commanders", nick: []string{"WSH"}},

	// AFC
	{abbr: "BAL", loc: "Baltimore", mascot: "Ravens"},
	{abbr: "BUF", loc: "Buffalo", mascot: "Bills"},
	{abbr: "CIN", loc: "Cincinnati", mascot: "Bengals"},
	{abbr: "CLE", loc: "Cleveland", mascot: "Browns"},
	{abbr: "DEN", loc: "Denver", mascot: "Broncos"},
	{abbr: "HOU", loc: "Houston", mascot: "Texans"},
	{abbr: "IND", loc: "Indianapolis", mascot: "Colts"},
	{abbr: "JAX", loc: "Jacksonville", mascot: "Jaguars"},
	{abbr: "KC", loc: "Kansas City", mascot: "Chiefs"},
	{abbr: "LV", loc: "Las Vegas", mascot: "Raiders"},
	{abbr: "LAC", loc: "Los Angeles", mascot: "Chargers", nick: []string{"LA Chargers"}},
	{abbr: "MIA", loc: "Miami", mascot: "Dolphins"},
	{abbr: "NE", loc: "New England", mascot: "Patriots"},
	{abbr: "NYJ", loc: "New York", mascot: "Jets"},
	{abbr: "PIT", loc: "Pittsburgh", mascot: "Steelers"},
	{abbr: "TEN", loc: "Tennessee", mascot: "Titans"},
}

var teamTokens map[string]string = buildTokenMap()

// ResolveTeam maps a free-text team reference to its canonical display name.
// Matching is case-insensitive and retries once with a leading "the" and all
// punctuation stripped. Unknown input is echoed back title-cased with
// matched=false so it can still flow through as a display string.
func ResolveTeam(input string) (canonical string, matched bool) {
	raw := strings.ToLower(strings.TrimSpace(input))
	if raw == "" {
		return "", false
	}

	if name, ok := teamTokens[raw]; ok {
		return name, true
	}

	cleaned := strings.TrimPrefix(raw, "the ")
	cleaned = strings.TrimSpace(stripPunctuation(cleaned))
	if name, ok := teamTokens[cleaned]; ok {
		return name, true
	}

	return TitleCase(input), false
}

func buildTokenMap() map[string]string {
	// A city shared by two franchises (Los Angeles, New York) is not a
	// usable token on its own.
	locCount := make(map[string]int)
	for _, t := range teams {
		locCount[strings.ToLower(t.loc)]++
	}

	tokens := make(map[string]string)
	for _, t := range teams {
		tokens[strings.ToLower(t.abbr)] = t.mascot
		tokens[strings.ToLower(t.mascot)] = t.mascot
		tokens[strings.ToLower(t.loc+" "+t.mascot)] = t.mascot

		if locCount[strings.ToLower(t.loc)] == 1 {
			tokens[strings.ToLower(t.loc)] = t.mascot
		}

		for _, n := range t.nick {
			tokens[strings.ToLower(n)] = t.mascot
		}
	}
	return tokens
}

func stripPunctuation(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' || r == '\t' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TitleCase lowercases s and capitalizes the first letter of each word.
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
