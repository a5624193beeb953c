package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/jobtracker/internal/app/models"
	appRepos "github.com/yigit/jobtracker/internal/app/repositories"
)

// CreateDefaultCategories inserts the default hazard categories when the
// categories table is empty. Running it again is a no-op.
func CreateDefaultCategories(ctx context.Context, store appRepos.Store, lgr zerolog.Logger) (int, error) {
	lgr.Info().Msg("Checking/Creating default hazard categories...")

	created := 0
	err := store.WithinTransaction(ctx, func(ctx context.Context, tx appRepos.Store) error {
		count, err := tx.Categories().Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			lgr.Info().Int("count", count).Msg("Categories already exist, skipping creation")
			return nil
		}

		for _, c := range appModels.DefaultCategories {
			category := c
			if err := tx.Categories().Create(ctx, &category); err != nil {
				return fmt.Errorf("error creating category %q: %w", category.Name, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default categories")
		return 0, err
	}

	lgr.Info().Int("created", created).Msg("Default category check/creation finished.")
	return created, nil
}
