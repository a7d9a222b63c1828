package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"aid-appraisal/internal/appraisal"
	"aid-appraisal/internal/model"
)

// ErrNotFound is returned when no record exists for the requested ID.
var ErrNotFound = errors.New("appraisal record not found")

// Record is the persisted appraisal: the three metrics, the parameters they
// were computed under, and the original input series for audit. Nullable
// metrics persist as NULL and surface as "N/A" upstream.
type Record struct {
	ID          uuid.UUID `json:"id"`
	ProjectName string    `json:"project_name,omitempty"`

	AppraisalType    string   `json:"appraisal_type"` // always "eirr"
	EIRRResult       *float64 `json:"eirr_result"`    // percent
	NPV              *float64 `json:"npv"`
	BenefitCostRatio *float64 `json:"benefit_cost_ratio"`
	Verdict          string   `json:"verdict"`

	ShadowWageRate           float64 `json:"shadow_wage_rate"`
	ShadowExchangeRate       float64 `json:"shadow_exchange_rate"`
	StandardConversionFactor float64 `json:"standard_conversion_factor"`
	SocialDiscountRate       float64 `json:"social_discount_rate"` // percent
	ProjectLifeYears         int     `json:"project_life_years"`
	ConstructionYears        int     `json:"construction_years"`

	CostData    []model.Entry `json:"cost_data"`
	BenefitData []model.Entry `json:"benefit_data"`

	CreatedAt time.Time `json:"created_at"`
}

// NewRecord assembles the persisted record from validated inputs and a
// completed result.
func NewRecord(projectName string, in model.AppraisalInputs, res *appraisal.Result) *Record {
	npv := res.NPV
	return &Record{
		ID:          uuid.New(),
		ProjectName: projectName,

		AppraisalType:    "eirr",
		EIRRResult:       res.EIRR,
		NPV:              &npv,
		BenefitCostRatio: res.BCR,
		Verdict:          string(res.Verdict),

		ShadowWageRate:           in.Params.ShadowWageRate,
		ShadowExchangeRate:       in.Params.ShadowExchangeRate,
		StandardConversionFactor: in.Params.StandardConversionFactor,
		SocialDiscountRate:       in.Params.SocialDiscountRate,
		ProjectLifeYears:         in.Params.ProjectLifeYears,
		ConstructionYears:        in.Params.ConstructionYears,

		CostData:    in.Costs,
		BenefitData: in.Benefits,

		CreatedAt: time.Now().UTC(),
	}
}

// Store is the persistence collaborator for appraisal records.
type Store interface {
	Save(ctx context.Context, rec *Record) error
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
	List(ctx context.Context, limit int) ([]*Record, error)
}
