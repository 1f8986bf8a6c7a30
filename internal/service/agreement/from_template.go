package agreement

import (
	"context"
	"strings"

	"github.com/heartmarshall/riseflow-agreements/internal/domain"
	"github.com/heartmarshall/riseflow-agreements/internal/service/agreement/templates"
)

// CreateFromTemplate renders a built-in template with the given data and
// stores the result as a new agreement. The title defaults to the template
// heading.
func (s *Service) CreateFromTemplate(ctx context.Context, input FromTemplateInput) (*domain.Agreement, error) {
	userID, err := requireSuperAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	title := templates.Title(input.Type)
	if t := trimOrNil(input.Title); t != nil {
		title = *t
	}
	content := templates.Fill(input.Type, input.DynamicData, s.now())

	return s.create(ctx, userID, &domain.Agreement{
		Title:       strings.TrimSpace(title),
		Type:        input.Type,
		ContentHTML: &content,
	})
}
