package dto

// One update struct per role: each lists its exact mutable fields, and
// unknown roles are rejected at the boundary instead of iterating over
// arbitrary attributes.

type FarmerProfileUpdate struct {
	FarmLocation string `json:"farm_location"`
	CropType     string `json:"crop_type"`
	Phone        string `json:"phone,omitempty"`
}

type AgronomistProfileUpdate struct {
	Expertise string `json:"expertise"`
	License   string `json:"license"`
	Phone     string `json:"phone,omitempty"`
}

type DonorProfileUpdate struct {
	DonorType string `json:"donor_type,omitempty"`
	OrgName   string `json:"org_name"`
	Funding   string `json:"funding"`
	Phone     string `json:"phone,omitempty"`
}

type LeaderProfileUpdate struct {
	LeaderTitle string `json:"leader_title"`
	District    string `json:"district"`
	Phone       string `json:"phone,omitempty"`
}

type FinanceProfileUpdate struct {
	Department string `json:"department"`
	Phone      string `json:"phone,omitempty"`
}
