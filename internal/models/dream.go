package models

type DreamCategory string

const (
	CategoryCareer        DreamCategory = "Career"
	CategoryMoney         DreamCategory = "Money"
	CategoryEducation     DreamCategory = "Education"
	CategoryHealth        DreamCategory = "Health"
	CategoryRelationships DreamCategory = "Relationships"
	CategoryPersonal      DreamCategory = "Personal"
)

// Valid reports whether c is one of the fixed dream categories.
func (c DreamCategory) Valid() bool {
	switch c {
	case CategoryCareer, CategoryMoney, CategoryEducation,
		CategoryHealth, CategoryRelationships, CategoryPersonal:
		return true
	}
	return false
}

type TimeHorizon string

const (
	HorizonOneYear   TimeHorizon = "1 Year"
	HorizonFiveYears TimeHorizon = "5 Years"
	HorizonTenYears  TimeHorizon = "10 Years"
	HorizonLifetime  TimeHorizon = "Lifetime"
)

// Valid reports whether h is one of the fixed time horizons.
func (h TimeHorizon) Valid() bool {
	switch h {
	case HorizonOneYear, HorizonFiveYears, HorizonTenYears, HorizonLifetime:
		return true
	}
	return false
}

// Dream is a long-term aspiration. UserID never changes after creation,
// and dreams are archived rather than deleted. Progress is derived from
// the dream's goals at read time and is deliberately not a field here.
type Dream struct {
	ID          string        `json:"id" bson:"_id"`
	UserID      string        `json:"userId" bson:"userId"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	Category    DreamCategory `json:"category" bson:"category"`
	Horizon     TimeHorizon   `json:"horizon" bson:"horizon"`
	IsArchived  bool          `json:"isArchived" bson:"isArchived"`
	CreatedAt   int64         `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64         `json:"updatedAt" bson:"updatedAt"`
}
