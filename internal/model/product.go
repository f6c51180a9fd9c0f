package model

// ProductType discriminates the three catalog variants. Every product row
// carries the superset of variant columns; the Type tag decides which of
// them are meaningful and Shape() zeroes the rest before persisting.
type ProductType string

const (
	ProductVaccine ProductType = "vaccine"
	ProductBundle  ProductType = "bundle"
	ProductPackage ProductType = "package" // vaccination program
)

// AgeUnit qualifies the applicable-age range of a product.
type AgeUnit string

const (
	AgeUnitMonths AgeUnit = "months"
	AgeUnitYears  AgeUnit = "years"
)

// StringList is stored as a jsonb column.
type StringList []string

type Product struct {
	BaseModel
	Type ProductType `gorm:"type:varchar(20);not null;index" json:"type" validate:"required,oneof=vaccine bundle package"`

	// Common attributes (all variants)
	Name               string     `gorm:"type:varchar(255);not null" json:"name"`
	CommonName         string     `gorm:"type:varchar(255)" json:"common_name"`
	Description        string     `gorm:"type:text" json:"description"`
	ImagePath          string     `gorm:"type:varchar(512)" json:"image_path"`
	PediatricianIDs    StringList `gorm:"type:jsonb;serializer:json" json:"pediatrician_ids"`
	MinAge             int        `json:"min_age"`
	MaxAge             int        `json:"max_age"`
	AgeUnit            AgeUnit    `gorm:"type:varchar(10);default:'months'" json:"age_unit"`
	SpecialIndications string     `gorm:"type:text" json:"special_indications"`

	// Vaccine-only
	Manufacturer      string `gorm:"type:varchar(255)" json:"manufacturer,omitempty"`
	DosageInfo        string `gorm:"type:text" json:"dosage_info,omitempty"`
	TargetDiseases    string `gorm:"type:text" json:"target_diseases,omitempty"`
	DosesAndBoosters  string `gorm:"type:text" json:"doses_and_boosters,omitempty"`
	Contraindications string `gorm:"type:text" json:"contraindications,omitempty"`
	Precautions       string `gorm:"type:text" json:"precautions,omitempty"`

	// Bundle-only
	IncludedVaccineIDs StringList `gorm:"type:jsonb;serializer:json" json:"included_vaccine_ids,omitempty"`
	TargetMilestone    string     `gorm:"type:varchar(255)" json:"target_milestone,omitempty"`
	Hidden             bool       `gorm:"default:false" json:"hidden"`

	// Package-only
	IncludedBundleIDs  StringList `gorm:"type:jsonb;serializer:json" json:"included_bundle_ids,omitempty"`
	CanPayWholeProgram bool       `gorm:"default:false" json:"can_pay_whole_program"`

	// Pricing. Nullable: packages without CanPayWholeProgram carry no price.
	// OldPrice, when set, must exceed Price (discount display).
	Price    *int64 `json:"price,omitempty"`
	OldPrice *int64 `json:"old_price,omitempty"`
}

// Type guards. Downstream code narrows on these before touching
// variant-only fields.

func (p *Product) IsVaccine() bool { return p.Type == ProductVaccine }
func (p *Product) IsBundle() bool  { return p.Type == ProductBundle }
func (p *Product) IsPackage() bool { return p.Type == ProductPackage }

// ImageFolder maps a variant to its object-storage folder.
func (p *Product) ImageFolder() string {
	switch p.Type {
	case ProductBundle:
		return "bundles"
	case ProductPackage:
		return "packages"
	default:
		return "products"
	}
}

// Shape zeroes every field that does not belong to the selected variant.
// Called before persisting so that a type change on edit discards the
// fields of the previous variant instead of carrying them along.
func (p *Product) Shape() {
	switch p.Type {
	case ProductVaccine:
		p.IncludedVaccineIDs = nil
		p.TargetMilestone = ""
		p.Hidden = false
		p.IncludedBundleIDs = nil
		p.CanPayWholeProgram = false
	case ProductBundle:
		p.clearVaccineFields()
		p.IncludedBundleIDs = nil
		p.CanPayWholeProgram = false
	case ProductPackage:
		p.clearVaccineFields()
		p.IncludedVaccineIDs = nil
		p.TargetMilestone = ""
		p.Hidden = false
		if !p.CanPayWholeProgram {
			p.Price = nil
			p.OldPrice = nil
		}
	}
}

func (p *Product) clearVaccineFields() {
	p.Manufacturer = ""
	p.DosageInfo = ""
	p.TargetDiseases = ""
	p.DosesAndBoosters = ""
	p.Contraindications = ""
	p.Precautions = ""
}
