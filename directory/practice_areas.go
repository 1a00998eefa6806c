package directory

import "ausverity-backend/models"

var practiceAreas = []models.PracticeArea{
	{
		Slug:        "family-law",
		Name:        "Family Law",
		Category:    "family",
		Description: "Divorce, separation, parenting arrangements, property settlement and spousal maintenance.",
	},
	{
		Slug:        "criminal-law",
		Name:        "Criminal Law",
		Category:    "criminal",
		Description: "Defence of criminal charges, bail applications, sentencing and appeals.",
	},
	{
		Slug:        "property-law",
		Name:        "Property Law",
		Category:    "property",
		Description: "Residential and commercial property transactions, leasing and property disputes.",
	},
	{
		Slug:        "conveyancing",
		Name:        "Conveyancing",
		Category:    "property",
		Description: "Transfer of property title, contract review and settlement.",
	},
	{
		Slug:        "employment-law",
		Name:        "Employment Law",
		Category:    "employment",
		Description: "Unfair dismissal, workplace contracts, discrimination and wage claims.",
	},
	{
		Slug:        "wills-and-estates",
		Name:        "Wills & Estates",
		Category:    "estates",
		Description: "Wills, powers of attorney, probate and estate disputes.",
	},
	{
		Slug:        "personal-injury",
		Name:        "Personal Injury",
		Category:    "injury",
		Description: "Motor vehicle, workplace and public liability injury compensation claims.",
	},
	{
		Slug:        "commercial-law",
		Name:        "Commercial Law",
		Category:    "business",
		Description: "Business structures, commercial contracts, acquisitions and franchising.",
	},
	{
		Slug:        "immigration-law",
		Name:        "Immigration Law",
		Category:    "immigration",
		Description: "Visa applications, sponsorship, citizenship and migration review.",
	},
	{
		Slug:        "litigation",
		Name:        "Litigation & Disputes",
		Category:    "litigation",
		Description: "Civil and commercial disputes, debt recovery and court proceedings.",
	},
	{
		Slug:        "tax-law",
		Name:        "Tax Law",
		Category:    "tax",
		Description: "Tax disputes, ATO audits, structuring and duties.",
	},
	{
		Slug:        "intellectual-property",
		Name:        "Intellectual Property",
		Category:    "intellectual-property",
		Description: "Trade marks, copyright, patents, designs and confidential information.",
	},
	{
		Slug:        "traffic-law",
		Name:        "Traffic Law",
		Category:    "criminal",
		Description: "Drink and drug driving, licence disqualification and traffic offences.",
	},
	{
		Slug:        "insolvency",
		Name:        "Bankruptcy & Insolvency",
		Category:    "insolvency",
		Description: "Personal bankruptcy, company administration, liquidation and creditor claims.",
	},
}

var (
	practiceAreasBySlug = indexPracticeAreas(practiceAreas)
	categories          = indexCategories(practiceAreas)
)

func indexPracticeAreas(list []models.PracticeArea) map[string]models.PracticeArea {
	m := make(map[string]models.PracticeArea, len(list))
	for _, pa := range list {
		m[pa.Slug] = pa
	}
	return m
}

func indexCategories(list []models.PracticeArea) map[string]bool {
	m := make(map[string]bool)
	for _, pa := range list {
		m[pa.Category] = true
	}
	return m
}

// PracticeAreas returns every practice area in display order
func PracticeAreas() []models.PracticeArea {
	out := make([]models.PracticeArea, len(practiceAreas))
	copy(out, practiceAreas)
	return out
}

// IsValidPracticeAreaSlug reports whether slug is one of the known practice areas
func IsValidPracticeAreaSlug(slug string) bool {
	_, ok := practiceAreasBySlug[slug]
	return ok
}

// GetPracticeAreaBySlug returns the practice area for slug
func GetPracticeAreaBySlug(slug string) (models.PracticeArea, bool) {
	pa, ok := practiceAreasBySlug[slug]
	return pa, ok
}

// IsValidCategory reports whether category is used by at least one practice area
func IsValidCategory(category string) bool {
	return categories[category]
}
