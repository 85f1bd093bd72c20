package generation

import (
	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

// GenerateInput is a request to write an Update for a keyword set.
// Keywords are expected to come from validate.TopicList.
type GenerateInput struct {
	Keywords     []string
	CreatedBy    *string
	InitialScore *float64 // nil = generation.initial_score
	Trigger      string   // metrics label, defaults to TriggerSubmit
}

func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Keywords) == 0 {
		errs = append(errs, domain.FieldError{Field: "keywords", Message: "required"})
	}
	for _, kw := range i.Keywords {
		if kw == "" {
			errs = append(errs, domain.FieldError{Field: "keywords", Message: "must not contain empty keywords"})
			break
		}
	}
	if i.InitialScore != nil {
		if err := domain.ValidateScore(*i.InitialScore); err != nil {
			errs = append(errs, domain.FieldError{Field: "initial_score", Message: "must be between 0 and 1"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
