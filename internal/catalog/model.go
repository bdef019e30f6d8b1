// File: internal/catalog/model.go
package catalog

// Option is one selectable value in a filter bar or form.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// List is an ordered option list.
type List []Option

// Values returns the raw values in order.
func (l List) Values() []string {
	out := make([]string, len(l))
	for i, o := range l {
		out[i] = o.Value
	}
	return out
}

// Contains reports whether v is one of the list's values.
func (l List) Contains(v string) bool {
	for _, o := range l {
		if o.Value == v {
			return true
		}
	}
	return false
}

// Gender values. Peer matching on the Meet Reverts screen is restricted to the viewer's own gender.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

var Genders = List{
	{Value: GenderMale, Label: "Male"},
	{Value: GenderFemale, Label: "Female"},
}

// Community

var PostTypes = List{
	{Value: "story", Label: "Share Story", Description: "Share your conversion journey"},
	{Value: "question", Label: "Ask Question", Description: "Seek guidance from the community"},
	{Value: "advice", Label: "Give Advice", Description: "Share wisdom and experience"},
	{Value: "celebration", Label: "Celebrate", Description: "Share happy moments"},
	{Value: "resource_share", Label: "Share Resource", Description: "Recommend useful content"},
}

// PostFilterTags is the tag list offered on the Community filter bar.
var PostFilterTags = List{
	{Value: "conversion_story", Label: "Conversion Stories"},
	{Value: "prayer", Label: "Prayer"},
	{Value: "family", Label: "Family"},
	{Value: "community", Label: "Community"},
	{Value: "learning", Label: "Learning"},
	{Value: "support", Label: "Support"},
}

// CommonTags are suggested when writing a post; custom tags are allowed too.
var CommonTags = List{
	{Value: "conversion_story", Label: "Conversion Story"},
	{Value: "prayer", Label: "Prayer"},
	{Value: "family", Label: "Family"},
	{Value: "workplace", Label: "Workplace"},
	{Value: "community", Label: "Community"},
	{Value: "learning", Label: "Learning"},
	{Value: "challenges", Label: "Challenges"},
	{Value: "celebration", Label: "Celebration"},
	{Value: "ramadan", Label: "Ramadan"},
	{Value: "hajj", Label: "Hajj"},
	{Value: "relationships", Label: "Relationships"},
	{Value: "support", Label: "Support"},
}

// Events

var EventTypes = List{
	{Value: "study_circle", Label: "Study Circles"},
	{Value: "iftar", Label: "Iftars"},
	{Value: "social_gathering", Label: "Social Gatherings"},
	{Value: "workshop", Label: "Workshops"},
	{Value: "charity", Label: "Charity"},
}

const (
	PeriodUpcoming = "upcoming"
	PeriodPast     = "past"
	PeriodAll      = "all"
)

var EventPeriods = List{
	{Value: PeriodUpcoming, Label: "Upcoming Events"},
	{Value: PeriodPast, Label: "Past Events"},
	{Value: PeriodAll, Label: "All Time"},
}

// Resources

var ResourceCategories = List{
	{Value: "quran", Label: "Quran"},
	{Value: "hadith", Label: "Hadith"},
	{Value: "prayer", Label: "Prayer"},
	{Value: "fasting", Label: "Fasting"},
	{Value: "charity", Label: "Charity"},
	{Value: "pilgrimage", Label: "Pilgrimage"},
	{Value: "daily_life", Label: "Daily Life"},
	{Value: "converts_guide", Label: "Convert Guides"},
}

var ResourceTypes = List{
	{Value: "article", Label: "Articles"},
	{Value: "video", Label: "Videos"},
	{Value: "audio", Label: "Audio"},
	{Value: "book", Label: "Books"},
	{Value: "course", Label: "Courses"},
	{Value: "app", Label: "Apps"},
}

var DifficultyLevels = List{
	{Value: "beginner", Label: "Beginner"},
	{Value: "intermediate", Label: "Intermediate"},
	{Value: "advanced", Label: "Advanced"},
}

// Mentors

// MentorFilterSpecialties is the specialty list offered on the Mentors filter bar.
var MentorFilterSpecialties = List{
	{Value: "prayer", Label: "Prayer & Worship"},
	{Value: "quran", Label: "Quran Study"},
	{Value: "daily_life", Label: "Daily Islamic Life"},
	{Value: "family", Label: "Family Matters"},
	{Value: "community", Label: "Community Integration"},
	{Value: "workplace", Label: "Workplace Challenges"},
	{Value: "arabic", Label: "Arabic Language"},
}

// MentorSpecialties is the list a mentor picks from on the profile form.
var MentorSpecialties = List{
	{Value: "prayer", Label: "Prayer"},
	{Value: "quran_study", Label: "Quran Study"},
	{Value: "daily_life", Label: "Daily Life"},
	{Value: "family_matters", Label: "Family Matters"},
	{Value: "workplace_challenges", Label: "Workplace Challenges"},
	{Value: "community_integration", Label: "Community Integration"},
	{Value: "arabic_language", Label: "Arabic Language"},
	{Value: "islamic_history", Label: "Islamic History"},
	{Value: "converts_guidance", Label: "Converts Guidance"},
	{Value: "youth_mentoring", Label: "Youth Mentoring"},
	{Value: "womens_issues", Label: "Women's Issues"},
	{Value: "mens_issues", Label: "Men's Issues"},
}

// HelpAreas are the fixed "area of help" choices on a mentor request.
var HelpAreas = List{
	{Value: "Prayer and worship", Label: "Prayer and worship"},
	{Value: "Quran study", Label: "Quran study"},
	{Value: "Islamic history", Label: "Islamic history"},
	{Value: "Daily Islamic practices", Label: "Daily Islamic practices"},
	{Value: "Family relationships", Label: "Family relationships"},
	{Value: "Community integration", Label: "Community integration"},
	{Value: "Workplace challenges", Label: "Workplace challenges"},
	{Value: "Converting questions", Label: "Converting questions"},
	{Value: "Arabic language", Label: "Arabic language"},
	{Value: "Islamic finance", Label: "Islamic finance"},
	{Value: "Other", Label: "Other"},
}

// Meet Reverts

// Interests is the list a user picks from on the profile form.
var Interests = List{
	{Value: "prayer", Label: "Prayer"},
	{Value: "quran_study", Label: "Quran Study"},
	{Value: "hadith", Label: "Hadith"},
	{Value: "arabic_language", Label: "Arabic Language"},
	{Value: "islamic_history", Label: "Islamic History"},
	{Value: "family_life", Label: "Family Life"},
	{Value: "community_service", Label: "Community Service"},
	{Value: "charity", Label: "Charity"},
	{Value: "fasting", Label: "Fasting"},
	{Value: "pilgrimage", Label: "Pilgrimage"},
	{Value: "islamic_finance", Label: "Islamic Finance"},
	{Value: "converts_support", Label: "Convert Support"},
	{Value: "interfaith_dialogue", Label: "Interfaith Dialogue"},
	{Value: "youth_programs", Label: "Youth Programs"},
}

// InterestFilters is the interest list offered on the Meet Reverts filter bar.
var InterestFilters = List{
	{Value: "prayer", Label: "Prayer"},
	{Value: "quran_study", Label: "Quran Study"},
	{Value: "arabic_language", Label: "Arabic Language"},
	{Value: "family_life", Label: "Family Life"},
	{Value: "community_service", Label: "Community Service"},
	{Value: "converts_support", Label: "Convert Support"},
	{Value: "islamic_history", Label: "Islamic History"},
}

// ConversionYears is the year list on the Meet Reverts filter bar. Matching is by exact year.
var ConversionYears = List{
	{Value: "2024", Label: "2024"},
	{Value: "2023", Label: "2023"},
	{Value: "2022", Label: "2022"},
	{Value: "2021", Label: "2021"},
	{Value: "2020", Label: "2020"},
	{Value: "2019", Label: "2019"},
	{Value: "2018", Label: "2018"},
}
