package sqlstore

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

var validate = validator.New()

// checkGroup validates a snapshot against the model struct tags and the
// referential rules the tags cannot express.
func checkGroup(group *models.Group) error {
	if err := validate.Struct(group); err != nil {
		return fmt.Errorf("%w %s: %v", storage.ErrInvalidGroup, group.ID, err)
	}

	seen := make(map[string]bool, len(group.Members))
	for _, m := range group.Members {
		if seen[m.ID] {
			return fmt.Errorf("%w %s: duplicate member %s", storage.ErrInvalidGroup, group.ID, m.ID)
		}
		seen[m.ID] = true
	}
	return nil
}

// checkStored validates a snapshot read back from the database.
func checkStored(group *models.Group) error {
	if err := checkGroup(group); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrCorruptGroup, err)
	}
	return nil
}
