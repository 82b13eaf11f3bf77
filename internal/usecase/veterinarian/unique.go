package veterinarian

import (
	"context"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/veterinarian"
)

// assertUnique checks crmv and email against every other veterinarian.
// The unique indexes still back this up under concurrent writes.
func assertUnique(
	ctx context.Context,
	repo domain.Repository,
	crmv string,
	email *string,
	excludeID uint,
) error {
	taken, err := repo.ExistsByCrmv(ctx, crmv, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrCrmvTaken
	}

	if email == nil {
		return nil
	}

	taken, err = repo.ExistsByEmail(ctx, *email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrEmailTaken
	}

	return nil
}
