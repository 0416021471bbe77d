package job

// Closed taxonomy for postings. Departments are only valid within their
// industry; ValidDepartment is the single source of truth for that rule.

var Industries = []string{
	"information_technology", "management", "business", "finance", "healthcare", "education",
	"manufacturing", "construction", "retail", "hospitality", "telecommunication",
	"transportation", "legal", "human_resources", "marketing_advertising", "media_entertainment",
	"research_development", "non_profit", "government", "agriculture", "energy_utilities",
	"pharmaceutical", "aerospace", "automotive", "tourism", "food_beverage", "beauty_wellness",
	"sports_recreation", "arts_culture", "environmental", "security", "consulting",
}

var Departments = map[string][]string{
	"information_technology": {"software_development", "devops", "it_support", "network_engineering", "data_science"},
	"management":             {"project_management", "operations", "product_management", "strategy", "risk_management"},
	"business":               {"business_analysis", "sales", "business_development", "customer_success"},
	"finance":                {"accounting", "audit", "treasury", "investment_banking", "financial_planning"},
	"healthcare":             {"nursing", "medical_administration", "healthcare_it", "pharmacy", "physiotherapy"},
	"education":              {"teaching", "curriculum_development", "admissions", "administration"},
	"manufacturing":          {"production", "quality_assurance", "maintenance", "supply_chain_management"},
	"construction":           {"site_management", "civil_engineering", "architecture", "safety"},
	"retail":                 {"store_management", "merchandising", "inventory_management", "customer_service"},
	"hospitality":            {"hotel_management", "food_beverage", "front_desk", "housekeeping"},
	"telecommunication":      {"network_operations", "technical_support", "sales", "engineering"},
	"transportation":         {"logistics", "fleet_management", "transportation_planning", "operations"},
	"legal":                  {"corporate_law", "compliance", "contracts", "litigation"},
	"human_resources":        {"recruitment", "learning_development", "compensation_benefits", "employee_relations"},
	"marketing_advertising":  {"digital_marketing", "brand_management", "market_research", "public_relations"},
	"media_entertainment":    {"journalism", "editing", "production", "social_media"},
	"research_development":   {"lab_research", "clinical_trials", "product_innovation"},
	"non_profit":             {"program_management", "fundraising", "volunteer_coordination", "advocacy"},
	"government":             {"policy_development", "public_administration", "regulatory_affairs"},
	"agriculture":            {"crop_science", "farm_management", "agricultural_technology", "quality_control"},
	"energy_utilities":       {"oil_gas", "renewable_energy", "safety_management", "procurement"},
	"pharmaceutical":         {"r_and_d", "regulatory_affairs", "quality_control", "sales"},
	"aerospace":              {"avionics", "aircraft_design", "maintenance", "flight_operations"},
	"automotive":             {"automotive_engineering", "manufacturing", "quality_assurance", "sales"},
	"tourism":                {"travel_concierge", "tour_operations", "event_planning", "marketing"},
	"food_beverage":          {"culinary_arts", "quality_control", "procurement", "sales"},
	"beauty_wellness":        {"cosmetology", "retail", "product_development", "marketing"},
	"sports_recreation":      {"coaching", "operations", "sales", "event_management"},
	"arts_culture":           {"gallery_management", "curation", "production", "education"},
	"environmental":          {"environmental_consulting", "field_research", "policy_development"},
	"security":               {"physical_security", "cybersecurity", "investigations"},
	"consulting":             {"strategy_consulting", "it_consulting", "management_consulting", "hr_consulting"},
}

var WorkTypes = []string{"part_time", "full_time", "contract", "internship"}

var GenderRequirements = []string{"male", "female", "no_requirement"}

var ExperienceLevels = []string{"intern", "junior", "mid", "senior"}

var SalaryTypes = []string{"fixed", "negotiable"}

var SalaryFrequencies = []string{"hourly", "weekly", "monthly", "quarterly", "yearly"}

var LocationTypes = []string{"remote", "onsite", "office", "hybrid"}

func ValidIndustry(slug string) bool {
	_, ok := Departments[slug]
	return ok
}

// ValidDepartment reports whether dept belongs to the given industry.
func ValidDepartment(industry, dept string) bool {
	for _, d := range Departments[industry] {
		if d == dept {
			return true
		}
	}
	return false
}

func ValidWorkType(slug string) bool { return contains(WorkTypes, slug) }

func ValidGender(slug string) bool { return contains(GenderRequirements, slug) }

func ValidExperience(slug string) bool { return contains(ExperienceLevels, slug) }

func ValidSalaryType(slug string) bool { return contains(SalaryTypes, slug) }

func ValidSalaryFreq(slug string) bool { return contains(SalaryFrequencies, slug) }

func ValidLocationType(slug string) bool { return contains(LocationTypes, slug) }

func contains(set []string, slug string) bool {
	for _, s := range set {
		if s == slug {
			return true
		}
	}
	return false
}
