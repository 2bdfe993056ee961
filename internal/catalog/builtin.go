package catalog

// Builtin returns the episodes shipped with podcards.
func Builtin() []Episode {
	eps := []Episode{
		{
			ID:          1,
			Title:       "Ethereum (Roadmap) in 30min",
			Description: "Ethereum (Roadmap) in 30min",
			ContentID:   "BWvThjrjTmw",
			Published:   "2025-11-22T17:30:00",
			GuestName:   "Vitalik Buterin",
			GuestBio:    []string{"Ethereum founder"},
			Highlights:  []string{"Ethereum, L1, roadmap"},
			GuestLinks: []Link{
				{Label: "Guest · Farcaster"},
				{Label: "Guest · Twitter", URL: "https://x.com/VitalikButerin"},
				{Label: "Guest · Telegram"},
			},
		},
		{
			ID:          2,
			Title:       "Institutions 🤝 Decentralization",
			Description: "Institutions 🤝 Decentralization",
			ContentID:   "2dwQvaLFUkc",
			Published:   "2025-11-22T17:31:00",
			GuestName:   "Danny Ryan",
			GuestBio:    []string{"Co-Founder and President of Etherealize"},
			Highlights:  []string{"Ethereum, institutional adoption, enterprises"},
			GuestLinks: []Link{
				{Label: "Guest · Farcaster"},
				{Label: "Guest · Twitter", URL: "https://x.com/dannyryan"},
				{Label: "Guest · Telegram"},
			},
		},
		{
			ID:          3,
			Title:       "Ethereum Update by Tomasz Stanczak",
			Description: "Ethereum Update by Tomasz Stanczak",
			ContentID:   "PBA9DEHfqpg",
			Published:   "2025-11-22T17:32:00",
			GuestName:   "Tomasz Stanczak",
			GuestBio:    []string{"Co-Executive Director at the Ethereum Foundation"},
			Highlights:  []string{"Ethereum update"},
			GuestLinks: []Link{
				{Label: "Guest · Farcaster"},
				{Label: "Guest · Twitter", URL: "https://x.com/tkstanczak"},
				{Label: "Guest · Telegram"},
			},
		},
	}
	for i := range eps {
		eps[i].PublishedAt = ParsePublishedAt(eps[i].Published)
	}
	return eps
}
