// File: internal/catalog/service.go
package catalog

// Catalog groups every option list the client renders, keyed by screen.
type Catalog struct {
	Genders   List `json:"genders"`
	Community struct {
		PostTypes  List `json:"post_types"`
		FilterTags List `json:"filter_tags"`
		CommonTags List `json:"common_tags"`
	} `json:"community"`
	Events struct {
		Types   List `json:"types"`
		Periods List `json:"periods"`
	} `json:"events"`
	Resources struct {
		Categories   List `json:"categories"`
		Types        List `json:"types"`
		Difficulties List `json:"difficulties"`
	} `json:"resources"`
	Mentors struct {
		FilterSpecialties  List `json:"filter_specialties"`
		ProfileSpecialties List `json:"profile_specialties"`
		HelpAreas          List `json:"help_areas"`
	} `json:"mentors"`
	Reverts struct {
		Interests       List `json:"interests"`
		FilterInterests List `json:"filter_interests"`
		ConversionYears List `json:"conversion_years"`
	} `json:"reverts"`
}

// Service exposes the option catalogs.
type Service interface {
	Get() Catalog
}

type service struct {
	catalog Catalog
}

// NewService builds the catalog once; the lists are static.
func NewService() Service {
	var c Catalog
	c.Genders = Genders
	c.Community.PostTypes = PostTypes
	c.Community.FilterTags = PostFilterTags
	c.Community.CommonTags = CommonTags
	c.Events.Types = EventTypes
	c.Events.Periods = EventPeriods
	c.Resources.Categories = ResourceCategories
	c.Resources.Types = ResourceTypes
	c.Resources.Difficulties = DifficultyLevels
	c.Mentors.FilterSpecialties = MentorFilterSpecialties
	c.Mentors.ProfileSpecialties = MentorSpecialties
	c.Mentors.HelpAreas = HelpAreas
	c.Reverts.Interests = Interests
	c.Reverts.FilterInterests = InterestFilters
	c.Reverts.ConversionYears = ConversionYears
	return &service{catalog: c}
}

func (s *service) Get() Catalog {
	return s.catalog
}
