package jobclient

// JobForm is the flattened posting form sent on create and update. Numeric
// fields are strings so an untouched input can be sent as "".
type JobForm struct {
	Title              string `json:"title"`
	CompanyName        string `json:"companyName"`
	CompanyWebsite     string `json:"companyWebsite,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`
	ContactName        string `json:"contactName,omitempty"`
	ContactEmail       string `json:"contactEmail,omitempty"`
	ContactPhone       string `json:"contactPhone,omitempty"`
	Description        string `json:"description,omitempty"`
	Locations          string `json:"locations,omitempty"`
	Industry           string `json:"industry,omitempty"`
	WorkplaceType      string `json:"workplaceType,omitempty"`
	OpportunityType    string `json:"opportunityType,omitempty"`
	IsOpen             *bool  `json:"isOpen,omitempty"`

	SalaryCurrency string `json:"salaryCurrency,omitempty"`
	SalaryType     string `json:"salaryType,omitempty"`
	SalaryMin      string `json:"salaryMin,omitempty"`
	SalaryMax      string `json:"salaryMax,omitempty"`

	RequiredSkills             string `json:"requiredSkills,omitempty"`
	MinExperience              string `json:"minExperience,omitempty"`
	MaxExperience              string `json:"maxExperience,omitempty"`
	Education                  string `json:"education,omitempty"`
	Deadline                   string `json:"deadline,omitempty"`
	ApplicationMethod          string `json:"applicationMethod,omitempty"`
	ApplicationEmail           string `json:"applicationEmail,omitempty"`
	ApplicationURL             string `json:"applicationUrl,omitempty"`
	ApplicationLink            string `json:"applicationLink"`
	ApplicationInPersonDetails string `json:"applicationInPersonDetails,omitempty"`
}
