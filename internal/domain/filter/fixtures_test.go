package filter

import "github.com/wvwild/adventure-hub/internal/domain/adventure"

func gain(v int) *int { return &v }

// sampleAdventures has exactly two fall adventures.
func sampleAdventures() []adventure.Adventure {
	return []adventure.Adventure{
		{
			ID:            "summersville-lake",
			Type:          adventure.KindLake,
			Title:         "Summersville Lake",
			Season:        []adventure.Season{adventure.SeasonSummer, adventure.SeasonFall},
			Difficulty:    adventure.DifficultyEasy,
			ElevationGain: gain(150),
			Suitability:   []adventure.Suitability{adventure.SuitabilityKidFriendly, adventure.SuitabilityDogFriendly},
			Gear:          []string{"fishing", "kayak"},
		},
		{
			ID:            "seneca-rocks",
			Type:          adventure.KindTrail,
			Title:         "Seneca Rocks",
			Season:        []adventure.Season{adventure.SeasonSpring, adventure.SeasonSummer},
			Difficulty:    adventure.DifficultyChallenging,
			ElevationGain: gain(1500),
			Suitability:   []adventure.Suitability{adventure.SuitabilityDogFriendly},
			Gear:          []string{"hiking", "climbing"},
		},
		{
			ID:          "burnsville-wma",
			Type:        adventure.KindWMA,
			Title:       "Burnsville Lake WMA",
			Season:      []adventure.Season{adventure.SeasonFall, adventure.SeasonWinter},
			Difficulty:  adventure.DifficultyModerate,
			Gear:        []string{"hunting"},
			Suitability: nil,
		},
		{
			ID:            "spruce-knob",
			Type:          adventure.KindTrail,
			Title:         "Spruce Knob",
			Season:        []adventure.Season{adventure.SeasonSummer},
			Difficulty:    adventure.DifficultyRugged,
			ElevationGain: gain(3000),
			Gear:          []string{"hiking", "camping"},
		},
		{
			ID:            "blackwater-falls",
			Type:          adventure.KindStatePark,
			Title:         "Blackwater Falls",
			Season:        []adventure.Season{adventure.SeasonWinter, adventure.SeasonSpring},
			Difficulty:    adventure.DifficultyModerate,
			ElevationGain: gain(1000),
			Suitability:   []adventure.Suitability{adventure.SuitabilityPaved, adventure.SuitabilityWheelchairAccessible},
			Gear:          []string{"hiking"},
		},
	}
}

func ids(items []adventure.Adventure) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}
