package adventure

// Kind identifies the destination category of an adventure.
type Kind string

const (
	KindWMA          Kind = "wma"
	KindLake         Kind = "lake"
	KindRiver        Kind = "river"
	KindCampground   Kind = "campground"
	KindStatePark    Kind = "state-park"
	KindHistoricSite Kind = "historic-site"
	KindTrail        Kind = "trail"
	KindSkiResort    Kind = "ski-resort"
	KindCave         Kind = "cave"
)

// Season is one of the four seasons an adventure is open or recommended in.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// Seasons lists the season vocabulary in calendar order.
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// Difficulty grades how demanding an adventure is.
type Difficulty string

const (
	DifficultyEasy        Difficulty = "easy"
	DifficultyModerate    Difficulty = "moderate"
	DifficultyChallenging Difficulty = "challenging"
	DifficultyRugged      Difficulty = "rugged"
)

// Difficulties lists the difficulty vocabulary from easiest to hardest.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyModerate, DifficultyChallenging, DifficultyRugged}

// Suitability tags who or what an adventure accommodates.
type Suitability string

const (
	SuitabilityDogFriendly          Suitability = "dog-friendly"
	SuitabilityKidFriendly          Suitability = "kid-friendly"
	SuitabilityWheelchairAccessible Suitability = "wheelchair-accessible"
	SuitabilityPaved                Suitability = "paved"
)

// Suitabilities lists the suitability vocabulary.
var Suitabilities = []Suitability{
	SuitabilityDogFriendly,
	SuitabilityKidFriendly,
	SuitabilityWheelchairAccessible,
	SuitabilityPaved,
}

// Image is a photo shown on an adventure card.
type Image struct {
	Src string `json:"src" yaml:"src" validate:"required"`
	Alt string `json:"alt" yaml:"alt" validate:"required"`
}

// Adventure is a single destination shown in the hub grid. Records are
// read-only once a Catalog has been built from them.
type Adventure struct {
	ID            string        `json:"id" yaml:"id" validate:"required"`
	Type          Kind          `json:"type" yaml:"type" validate:"required"`
	Title         string        `json:"title" yaml:"title" validate:"required"`
	Description   string        `json:"description" yaml:"description"`
	Location      string        `json:"location" yaml:"location"`
	Season        []Season      `json:"season,omitempty" yaml:"season,omitempty" validate:"omitempty,unique,dive,oneof=spring summer fall winter"`
	Difficulty    Difficulty    `json:"difficulty" yaml:"difficulty" validate:"required,oneof=easy moderate challenging rugged"`
	ElevationGain *int          `json:"elevationGain,omitempty" yaml:"elevationGain,omitempty" validate:"omitempty,min=0"`
	Suitability   []Suitability `json:"suitability,omitempty" yaml:"suitability,omitempty" validate:"omitempty,unique,dive,oneof=dog-friendly kid-friendly wheelchair-accessible paved"`
	Gear          []string      `json:"gear,omitempty" yaml:"gear,omitempty" validate:"omitempty,unique,dive,required"`
	DriveTime     string        `json:"driveTime,omitempty" yaml:"driveTime,omitempty"`
	Images        []Image       `json:"images,omitempty" yaml:"images,omitempty" validate:"dive"`
}

// HasElevationGain reports whether the record carries an elevation figure.
func (a Adventure) HasElevationGain() bool {
	return a.ElevationGain != nil
}
